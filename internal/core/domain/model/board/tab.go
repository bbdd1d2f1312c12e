package board

import (
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// AllTab selects every order regardless of status.
const AllTab = "all"

// Tab is the active filter of the board: "all" or one status name.
type Tab struct {
	value string
}

// ParseTab accepts "all" (also for blank input) or a status name from the
// closed set.
func ParseTab(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == AllTab {
		return Tab{value: AllTab}, nil
	}
	if st := order.ParseStatus(s); st != order.Unrecognized {
		return Tab{value: st.String()}, nil
	}
	return Tab{}, errs.NewValueIsInvalidErrorWithCause("tab", fmt.Errorf("%q is neither %q nor a status", s, AllTab))
}

// Tabs returns "all" followed by every status, in display order.
func Tabs() []Tab {
	tabs := []Tab{{value: AllTab}}
	for _, st := range order.AllStatuses() {
		tabs = append(tabs, Tab{value: st.String()})
	}
	return tabs
}

func (t Tab) String() string {
	if t.value == "" {
		return AllTab
	}
	return t.value
}

func (t Tab) IsAll() bool {
	return t.String() == AllTab
}

// Label is the display label: "All" or the status label.
func (t Tab) Label() string {
	if t.IsAll() {
		return "All"
	}
	return order.ParseStatus(t.value).Label()
}
