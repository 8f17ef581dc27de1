package rlm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Boomerang-Apps/wave/pkg/config"
)

// ScopedFile is one repo file ranked by relevance to a domain.
type ScopedFile struct {
	Path           string  `json:"path"`
	Relevance      float64 `json:"relevance"`
	IsDomainNative bool    `json:"is_domain_native"`
	IsShared       bool    `json:"is_shared"`
	ImportDepth    int     `json:"import_depth"`
}

// Relevance decay: native files score 1.0, one import hop 0.6, each
// further hop loses 0.1.
const (
	nativeRelevance   = 1.0
	firstHopRel       = 0.6
	hopDecay          = 0.1
	sharedImporterMin = 2
)

// Scoper ranks repo files by relevance to a domain using import-hop
// distance. Results are cached per domain until invalidated.
type Scoper struct {
	repoRoot string
	cfg      *config.DomainsConfig

	mu    sync.Mutex
	cache map[string][]ScopedFile
}

// NewScoper creates a scoper over the repo and domain config.
func NewScoper(repoRoot string, cfg *config.DomainsConfig) *Scoper {
	return &Scoper{repoRoot: repoRoot, cfg: cfg, cache: map[string][]ScopedFile{}}
}

// Invalidate drops cached results; call on file change.
func (s *Scoper) Invalidate(domain string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if domain == "" {
		s.cache = map[string][]ScopedFile{}
		return
	}
	delete(s.cache, domain)
}

// ScopeDomain returns the repo's files ranked for one domain, most
// relevant first.
func (s *Scoper) ScopeDomain(domain string) ([]ScopedFile, error) {
	s.mu.Lock()
	if cached, ok := s.cache[domain]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	rule, ok := s.cfg.Rule(domain)
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownDomain, domain)
	}

	files, imports, err := s.scanRepo()
	if err != nil {
		return nil, err
	}

	// Native files are the BFS seed
	native := map[string]bool{}
	for _, f := range files {
		for _, pattern := range rule.FilePatterns {
			if ok, _ := doublestar.Match(pattern, f); ok {
				native[f] = true
				break
			}
		}
	}

	depths := importDepths(native, imports)
	importerCounts := s.countDomainImporters(files, imports)

	var scoped []ScopedFile
	for _, f := range files {
		depth, reachable := depths[f]
		if !reachable {
			continue
		}
		relevance := nativeRelevance
		if depth > 0 {
			relevance = firstHopRel - hopDecay*float64(depth-1)
		}
		if relevance < 0 {
			relevance = 0
		}
		scoped = append(scoped, ScopedFile{
			Path:           f,
			Relevance:      relevance,
			IsDomainNative: depth == 0,
			IsShared:       importerCounts[f] >= sharedImporterMin,
			ImportDepth:    depth,
		})
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		if scoped[i].Relevance != scoped[j].Relevance {
			return scoped[i].Relevance > scoped[j].Relevance
		}
		return scoped[i].Path < scoped[j].Path
	})

	s.mu.Lock()
	s.cache[domain] = scoped
	s.mu.Unlock()
	return scoped, nil
}

// importDepths runs BFS from the native set over the import graph.
func importDepths(native map[string]bool, imports map[string][]string) map[string]int {
	depths := map[string]int{}
	var frontier []string
	for f := range native {
		depths[f] = 0
		frontier = append(frontier, f)
	}
	sort.Strings(frontier)

	for len(frontier) > 0 {
		var next []string
		for _, f := range frontier {
			for _, imported := range imports[f] {
				if _, seen := depths[imported]; seen {
					continue
				}
				depths[imported] = depths[f] + 1
				next = append(next, imported)
			}
		}
		frontier = next
	}
	return depths
}

// countDomainImporters counts, per file, how many distinct domains import
// it. Files imported by two or more domains are shared.
func (s *Scoper) countDomainImporters(files []string, imports map[string][]string) map[string]int {
	domainsImporting := map[string]map[string]bool{}
	for _, rule := range s.cfg.Domains {
		for _, f := range files {
			owned := false
			for _, pattern := range rule.FilePatterns {
				if ok, _ := doublestar.Match(pattern, f); ok {
					owned = true
					break
				}
			}
			if !owned {
				continue
			}
			for _, imported := range imports[f] {
				if domainsImporting[imported] == nil {
					domainsImporting[imported] = map[string]bool{}
				}
				domainsImporting[imported][rule.ID] = true
			}
		}
	}
	counts := make(map[string]int, len(domainsImporting))
	for f, domains := range domainsImporting {
		counts[f] = len(domains)
	}
	return counts
}

var importPattern = regexp.MustCompile(`(?m)^\s*(?:import\s+.*?from\s+['"]([^'"]+)['"]|import\s+['"]([^'"]+)['"]|(?:const|let|var)\s+.*?=\s*require\(['"]([^'"]+)['"]\))`)

// scanRepo lists source files and builds the per-file import edge list.
// Only relative imports resolve to repo files; package imports are skipped.
func (s *Scoper) scanRepo() ([]string, map[string][]string, error) {
	var files []string
	imports := map[string][]string{}
	known := map[string]bool{}

	err := filepath.WalkDir(s.repoRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSourceFile(path) {
			return nil
		}
		rel, err := filepath.Rel(s.repoRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		files = append(files, rel)
		known[rel] = true
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(files)

	for _, rel := range files {
		edges, err := s.fileImports(rel, known)
		if err != nil {
			return nil, nil, err
		}
		imports[rel] = edges
	}
	return files, imports, nil
}

func (s *Scoper) fileImports(rel string, known map[string]bool) ([]string, error) {
	f, err := os.Open(filepath.Join(s.repoRoot, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var edges []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, m := range importPattern.FindAllStringSubmatch(scanner.Text(), -1) {
			spec := m[1]
			if spec == "" {
				spec = m[2]
			}
			if spec == "" {
				spec = m[3]
			}
			if !strings.HasPrefix(spec, ".") {
				continue
			}
			if resolved := resolveImport(rel, spec, known); resolved != "" {
				edges = append(edges, resolved)
			}
		}
	}
	return edges, scanner.Err()
}

// resolveImport maps a relative import specifier to a known repo file,
// trying the common source extensions and index files.
func resolveImport(from, spec string, known map[string]bool) string {
	base := filepath.ToSlash(filepath.Join(filepath.Dir(from), spec))
	candidates := []string{
		base,
		base + ".ts", base + ".tsx", base + ".js", base + ".jsx",
		base + "/index.ts", base + "/index.tsx", base + "/index.js",
	}
	for _, c := range candidates {
		if known[c] {
			return c
		}
	}
	return ""
}

func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".ts", ".tsx", ".js", ".jsx", ".go", ".py":
		return true
	}
	return false
}
