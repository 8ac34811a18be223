package model

// XPEvent is one day's accumulated reward points. The history keeps at most
// one record per calendar day; same-day events fold into the existing
// record's XP.
type XPEvent struct {
	Date string `json:"date"`
	XP   int    `json:"xp"`
}

// CatchScrollDay is the per-day sub-ledger for the catch-scroll tap source.
// Taps always equals len(Times).
type CatchScrollDay struct {
	Date     string   `json:"date"`
	Taps     int      `json:"taps"`
	Times    []string `json:"times"`
	XPEarned int      `json:"xpEarned"`
}

// CatchScrollTapXP is the fixed reward for one catch-scroll tap.
const CatchScrollTapXP = 1
