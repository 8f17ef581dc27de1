package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

var (
	preflightValidate bool
	preflightLock     bool
	preflightCheck    bool
	preflightReport   bool
	preflightAudit    bool
	preflightProject  string
)

// preflightLockFile records the config hash frozen at launch time.
type preflightLockFile struct {
	ConfigHash string    `json:"config_hash"`
	Domains    int       `json:"domains"`
	LockedAt   time.Time `json:"locked_at"`
}

var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Validate and lock the launch configuration",
	Long: `preflight checks the project's wave-config.json and config/rlm.json
before a launch, freezes the config with --lock, and verifies with --check
that nothing changed since the lock was taken.`,
	RunE: runPreflight,
}

func init() {
	preflightCmd.Flags().BoolVar(&preflightValidate, "validate", false, "Validate wave-config.json and config/rlm.json")
	preflightCmd.Flags().BoolVar(&preflightLock, "lock", false, "Record the config hash in .wave/preflight.lock")
	preflightCmd.Flags().BoolVar(&preflightCheck, "check", false, "Verify the config still matches the lock")
	preflightCmd.Flags().BoolVar(&preflightReport, "report", false, "Print the domain ownership table")
	preflightCmd.Flags().BoolVar(&preflightAudit, "audit", false, "List repository files not owned by any domain")
	preflightCmd.Flags().StringVar(&preflightProject, "project", ".", "Project root directory")
}

func runPreflight(cmd *cobra.Command, args []string) error {
	if !preflightValidate && !preflightLock && !preflightCheck && !preflightReport && !preflightAudit {
		return fmt.Errorf("%w: at least one of --validate, --lock, --check, --report, --audit is required", errUsage)
	}

	configPath := filepath.Join(preflightProject, "wave-config.json")
	domains, err := config.LoadDomains(configPath)
	if err != nil {
		return err
	}
	if _, err := config.LoadRLM(filepath.Join(preflightProject, "config", "rlm.json")); err != nil {
		return err
	}
	if preflightValidate {
		fmt.Printf("Configuration valid: %d domains\n", len(domains.Domains))
	}

	if preflightLock {
		if err := writePreflightLock(configPath, domains); err != nil {
			return err
		}
		fmt.Println("Preflight lock written")
	}
	if preflightCheck {
		if err := checkPreflightLock(configPath); err != nil {
			return err
		}
		fmt.Println("Preflight lock matches")
	}
	if preflightReport {
		reportDomains(domains)
	}
	if preflightAudit {
		return auditOwnership(domains)
	}
	return nil
}

func configHash(configPath string) (string, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", configPath, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func preflightLockPath() string {
	return filepath.Join(preflightProject, ".wave", "preflight.lock")
}

func writePreflightLock(configPath string, domains *config.DomainsConfig) error {
	hash, err := configHash(configPath)
	if err != nil {
		return err
	}
	lock := preflightLockFile{
		ConfigHash: hash,
		Domains:    len(domains.Domains),
		LockedAt:   time.Now().UTC(),
	}
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(preflightLockPath()), 0o755); err != nil {
		return err
	}
	return os.WriteFile(preflightLockPath(), data, 0o644)
}

func checkPreflightLock(configPath string) error {
	data, err := os.ReadFile(preflightLockPath())
	if err != nil {
		return fmt.Errorf("no preflight lock found, run --lock first: %w", err)
	}
	var lock preflightLockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return fmt.Errorf("malformed preflight lock: %w", err)
	}
	hash, err := configHash(configPath)
	if err != nil {
		return err
	}
	if hash != lock.ConfigHash {
		return fmt.Errorf("config changed since lock was taken at %s", lock.LockedAt.Format(time.RFC3339))
	}
	return nil
}

func reportDomains(domains *config.DomainsConfig) {
	for _, d := range domains.Domains {
		fmt.Printf("%-12s %-24s %s\n", d.ID, d.Name, strings.Join(d.FilePatterns, ", "))
	}
}

// auditOwnership walks the project and reports files no domain owns.
// Unowned files are denied by default at runtime, so any hit here is a
// config gap worth fixing before launch.
func auditOwnership(domains *config.DomainsConfig) error {
	var unowned []string
	err := filepath.WalkDir(preflightProject, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || name == ".wave" || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(preflightProject, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, rule := range domains.Domains {
			for _, pattern := range rule.FilePatterns {
				if ok, _ := doublestar.Match(pattern, rel); ok {
					return nil
				}
			}
		}
		unowned = append(unowned, rel)
		return nil
	})
	if err != nil {
		return err
	}
	if len(unowned) == 0 {
		fmt.Println("All files are owned by a domain")
		return nil
	}
	for _, f := range unowned {
		fmt.Println(f)
	}
	return fmt.Errorf("%d files are not owned by any domain", len(unowned))
}
