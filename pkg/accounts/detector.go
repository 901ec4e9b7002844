package accounts

import (
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/spendsnap/spendsnap/pkg/models"
)

const (
	scorePackageMatch  = 100
	scoreAppNameMatch  = 80
	scoreMerchantMatch = 50
	scoreRecentUsage   = 10

	DefaultAutoSelectThreshold = 80
	DefaultMaxRecent           = 5
)

type Signals struct {
	PackageID string
	Extracted *models.ExtractedTransaction
	AppName   string
}

type Candidate struct {
	ID    string
	Label string
	Icon  string
	Score int
}

type DetectionResult struct {
	// SelectedAccountID is set only when the top candidate cleared the
	// auto-select threshold.
	SelectedAccountID string
	Confidence        float64
	Candidates        []Candidate
}

type DetectorConfig struct {
	AutoSelectThreshold int
	MaxRecent           int
}

// Detector scores every registered account against the available signals.
// It also owns the bounded recent-usage list shared between scoring and
// the "recent accounts first" UI ordering.
type Detector struct {
	registry  *Registry
	threshold int
	maxRecent int

	mu     sync.Mutex
	recent []string
}

func NewDetector(registry *Registry, cfg DetectorConfig) *Detector {
	if cfg.AutoSelectThreshold <= 0 {
		cfg.AutoSelectThreshold = DefaultAutoSelectThreshold
	}
	if cfg.MaxRecent <= 0 {
		cfg.MaxRecent = DefaultMaxRecent
	}

	return &Detector{
		registry:  registry,
		threshold: cfg.AutoSelectThreshold,
		maxRecent: cfg.MaxRecent,
	}
}

// Detect never fails; absent signals simply yield an empty result.
func (d *Detector) Detect(sig Signals) DetectionResult {
	recent := d.RecentAccounts()

	var candidates []Candidate
	for _, def := range d.registry.All() {
		score := d.score(def, sig, recent)
		if score == 0 {
			continue
		}

		candidates = append(candidates, Candidate{
			ID:    def.ID,
			Label: def.Label,
			Icon:  def.Icon,
			Score: score,
		})
	}

	// Stable sort keeps registry order on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	result := DetectionResult{Candidates: candidates}

	if len(candidates) > 0 && candidates[0].Score >= d.threshold {
		result.SelectedAccountID = candidates[0].ID
		result.Confidence = float64(candidates[0].Score) / 100
		if result.Confidence > 1 {
			result.Confidence = 1
		}
	}

	return result
}

func (d *Detector) score(def *Definition, sig Signals, recent []string) int {
	score := 0

	if sig.PackageID != "" && lo.ContainsBy(def.PackageIDs, func(pkg string) bool {
		return strings.EqualFold(pkg, sig.PackageID)
	}) {
		score += scorePackageMatch
	}

	if sig.AppName != "" {
		appName := strings.ToLower(sig.AppName)
		for _, keyword := range def.Keywords {
			if strings.Contains(appName, strings.ToLower(keyword)) {
				score += scoreAppNameMatch
				break
			}
		}
	}

	if sig.Extracted != nil && def.MatchesMerchant(sig.Extracted.Merchant) {
		score += scoreMerchantMatch
	}

	if lo.Contains(recent, def.ID) {
		score += scoreRecentUsage
	}

	return score
}

// RecordUsage moves id to the front of the recency list, evicting the
// oldest entry beyond the configured maximum.
func (d *Detector) RecordUsage(accountID string) {
	if _, ok := d.registry.ByID(accountID); !ok {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.recent = lo.Without(d.recent, accountID)
	d.recent = append([]string{accountID}, d.recent...)

	if len(d.recent) > d.maxRecent {
		d.recent = d.recent[:d.maxRecent]
	}
}

// RecentAccounts returns the most-recently-used account ids, newest first.
func (d *Detector) RecentAccounts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.recent))
	copy(out, d.recent)

	return out
}
