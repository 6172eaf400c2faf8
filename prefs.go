package fleetbook

// Prefs holds the small per-office preferences that survive between
// invocations: the currently selected reporting month and the URL of the
// last cloud backup per store.
type Prefs struct {
	Month      string            `json:"month,omitempty"`
	LastBackup map[string]string `json:"lastBackup,omitempty"`
}

// SelectedMonth returns the persisted reporting month, or the zero Month
// (matching everything) when none is set or the value is garbled.
func (p *Prefs) SelectedMonth() Month {
	if p == nil || p.Month == "" {
		return Month{}
	}
	m, err := ParseMonth(p.Month)
	if err != nil {
		return Month{}
	}
	return m
}

// RememberBackup records the URL of the latest cloud backup for a store
// key ("book" or "fines").
func (p *Prefs) RememberBackup(key, url string) {
	if p.LastBackup == nil {
		p.LastBackup = make(map[string]string)
	}
	p.LastBackup[key] = url
}

// Backup returns the URL of the last recorded cloud backup for a store
// key, or "" when none was taken yet.
func (p *Prefs) Backup(key string) string {
	if p == nil {
		return ""
	}
	return p.LastBackup[key]
}
