package commands

import (
	"github.com/meridianbank/navkit/pkg/navkit"
	"github.com/meridianbank/navkit/pkg/navkit/route"
)

// stateDTO is the wire/print form of an app snapshot. Routes are rendered
// as screen titles so the output reads like the visible back-stack.
type stateDTO struct {
	SelectedTab    string              `json:"selected_tab"`
	Authenticated  bool                `json:"authenticated"`
	PendingLink    string              `json:"pending_deep_link,omitempty"`
	SessionExpired bool                `json:"session_expired"`
	Stacks         map[string][]string `json:"stacks"`
	Sheets         map[string]string   `json:"sheets,omitempty"`
	FullScreens    map[string]string   `json:"full_screens,omitempty"`
}

func snapshotDTO(k *navkit.Kit) stateDTO {
	st := k.App.State()
	dto := stateDTO{
		SelectedTab:    st.SelectedTab.String(),
		Authenticated:  st.Authenticated,
		PendingLink:    st.PendingDeepLink,
		SessionExpired: st.SessionExpired,
		Stacks:         make(map[string][]string),
		Sheets:         make(map[string]string),
		FullScreens:    make(map[string]string),
	}
	for _, tab := range route.Tabs {
		fs := st.Features[tab]
		titles := make([]string, 0, len(fs.Stack)+1)
		titles = append(titles, k.Builder.RootHandle(tab).Title)
		for _, r := range fs.Stack {
			titles = append(titles, k.Builder.Build(r).Title)
		}
		dto.Stacks[tab.String()] = titles
		if fs.Sheet != nil {
			dto.Sheets[tab.String()] = k.Builder.Build(fs.Sheet).Title
		}
		if fs.FullScreen != nil {
			dto.FullScreens[tab.String()] = k.Builder.Build(fs.FullScreen).Title
		}
	}
	return dto
}
