package domain

// UpgradeSummary is the fact-like view of a pair of simulated upgrade runs.
//
// DistPackages is nil when no updates are pending at all, and an empty slice when
// updates are pending but none of them needs a distribution upgrade.
type UpgradeSummary struct {
	HasUpdates       bool     `json:"has_updates"`
	Updates          int      `json:"updates"`
	SecurityUpdates  int      `json:"security_updates"`
	Packages         []string `json:"packages"`
	SecurityPackages []string `json:"security_packages"`
	HasDistUpdates   bool     `json:"has_dist_updates"`
	DistPackages     []string `json:"dist_packages"`
}
