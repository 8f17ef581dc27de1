package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave/pkg/config"
	"github.com/Boomerang-Apps/wave/pkg/rlm"
)

var (
	rlmAuditProject  string
	rlmAuditInterval time.Duration
)

var rlmAuditCmd = &cobra.Command{
	Use:   "rlm-audit",
	Short: "Audit per-domain context scope and token weight",
	Long: `rlm-audit scopes every configured domain over the project tree and
reports file counts, shared files, and estimated context tokens against the
configured limit. With --interval it repeats until interrupted.`,
	RunE: runRLMAudit,
}

func init() {
	rlmAuditCmd.Flags().StringVar(&rlmAuditProject, "project", ".", "Project root directory")
	rlmAuditCmd.Flags().DurationVar(&rlmAuditInterval, "interval", 0, "Repeat interval (0 runs once)")
}

func runRLMAudit(cmd *cobra.Command, args []string) error {
	domains, err := config.LoadDomains(filepath.Join(rlmAuditProject, "wave-config.json"))
	if err != nil {
		return err
	}
	rlmCfg, err := config.LoadRLM(filepath.Join(rlmAuditProject, "config", "rlm.json"))
	if err != nil {
		return err
	}

	for {
		if err := auditOnce(domains, rlmCfg); err != nil {
			return err
		}
		if rlmAuditInterval <= 0 {
			return nil
		}
		select {
		case <-cmd.Context().Done():
			return nil
		case <-time.After(rlmAuditInterval):
		}
	}
}

func auditOnce(domains *config.DomainsConfig, rlmCfg *config.RLMConfig) error {
	scoper := rlm.NewScoper(rlmAuditProject, domains)

	fmt.Printf("%-12s %8s %8s %10s\n", "DOMAIN", "FILES", "SHARED", "TOKENS")
	overBudget := false
	for _, rule := range domains.Domains {
		if rule.ID == config.SharedDomain {
			continue
		}
		files, err := scoper.ScopeDomain(rule.ID)
		if err != nil {
			return err
		}

		shared := 0
		cache := rlm.NewContextCache(rlmAuditProject, rlmCfg.MaxContextTokens)
		var paths []string
		for _, f := range files {
			if f.IsShared {
				shared++
			}
			paths = append(paths, f.Path)
		}
		if _, _, err := cache.LoadStoryContext(paths); err != nil {
			return err
		}
		tokens := cache.TokenCount()

		marker := ""
		if tokens > rlmCfg.MaxContextTokens {
			marker = " OVER LIMIT"
			overBudget = true
		}
		fmt.Printf("%-12s %8d %8d %10d%s\n", rule.ID, len(files), shared, tokens, marker)
	}

	if overBudget {
		return fmt.Errorf("one or more domains exceed the %d token context limit", rlmCfg.MaxContextTokens)
	}
	return nil
}
