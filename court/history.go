package court

import (
	"fmt"
	"time"

	"royal-court/model"
)

// HistoryDisplayCap is the hard cap on chronicle entries shown at once;
// anything beyond it is summarized as "+N more".
const HistoryDisplayCap = 10

// HistoryEntry is one display-ready chronicle line.
type HistoryEntry struct {
	Kind   model.SanctionKind
	Icon   string
	Label  string
	Age    string
	Reason string
}

// HistoryView is the display form of a subject's chronicle.
type HistoryView struct {
	Entries []HistoryEntry
	Total   int
	Omitted int
}

// MoreSummary returns the "+N more" footer, or "" when nothing was omitted.
func (v HistoryView) MoreSummary() string {
	if v.Omitted == 0 {
		return ""
	}
	suffix := "s"
	if v.Omitted == 1 {
		suffix = ""
	}
	return fmt.Sprintf("And %d more judgment%s...", v.Omitted, suffix)
}

// KindIcon returns the chronicle icon for a sanction kind.
func KindIcon(kind model.SanctionKind) string {
	switch kind {
	case model.SanctionBanish:
		return "🏴"
	case model.SanctionCastOut:
		return "🚪"
	case model.SanctionPillory:
		return "🪓"
	case model.SanctionStocks:
		return "🔒"
	case model.SanctionPardon:
		return "🕊️"
	case model.SanctionSummon:
		return "📯"
	case model.SanctionPurge:
		return "🧹"
	case model.SanctionDecree:
		return "📜"
	}
	return "⚖️"
}

// KindLabel returns the short chronicle description for a sanction kind.
func KindLabel(kind model.SanctionKind) string {
	switch kind {
	case model.SanctionBanish:
		return "Banished from realm"
	case model.SanctionCastOut:
		return "Cast from gates"
	case model.SanctionPillory:
		return "Public pillory"
	case model.SanctionStocks:
		return "Silenced in stocks"
	case model.SanctionPardon:
		return "Royal pardon"
	case model.SanctionSummon:
		return "Royal summons"
	case model.SanctionPurge:
		return "Hall cleansed"
	case model.SanctionDecree:
		return "Royal decree"
	}
	return string(kind)
}

// BuildHistoryView turns an already-fetched, newest-first record sequence
// into a display view. Pure transform: it performs no queries and truncates
// to HistoryDisplayCap entries.
func BuildHistoryView(records []model.SanctionRecord, now time.Time) HistoryView {
	view := HistoryView{Total: len(records)}
	shown := records
	if len(shown) > HistoryDisplayCap {
		shown = shown[:HistoryDisplayCap]
		view.Omitted = len(records) - HistoryDisplayCap
	}
	for _, rec := range shown {
		view.Entries = append(view.Entries, HistoryEntry{
			Kind:   rec.Kind,
			Icon:   KindIcon(rec.Kind),
			Label:  KindLabel(rec.Kind),
			Age:    RelativeAge(now, rec.CreatedAt),
			Reason: rec.Reason,
		})
	}
	return view
}
