package web

import (
	app "rodnan-bot/internal/application"
	"rodnan-bot/internal/domain/port"
)

type regionView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Score    int     `json:"score"`
	Color    string  `json:"color"`
	Selected bool    `json:"selected"`
	Unscored bool    `json:"unscored"`
}

type optionView struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type noticeView struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type stateResponse struct {
	Regions  []regionView `json:"regions"`
	Selected string       `json:"selected,omitempty"`
	Prompt   string       `json:"prompt,omitempty"`
	Options  []optionView `json:"options"`
	Total    int          `json:"total"`
	Action   string       `json:"action"`
	Notices  []noticeView `json:"notices"`
	Hit      *bool        `json:"hit,omitempty"`
}

func newStateResponse(snap app.Snapshot, notices []port.Notice) stateResponse {
	v := snap.Variant
	resp := stateResponse{
		Regions: make([]regionView, 0, len(snap.Regions)),
		Options: make([]optionView, 0, len(v.Options)),
		Total:   snap.Total,
		Action:  string(v.Action),
		Notices: make([]noticeView, 0, len(notices)),
	}

	for _, r := range snap.Regions {
		resp.Regions = append(resp.Regions, regionView{
			ID:       r.ID,
			Name:     r.Name,
			X:        r.Position.X,
			Y:        r.Position.Y,
			Score:    r.Score,
			Color:    v.ColorFor(r.Score),
			Selected: snap.Selected.Is(r.ID),
			Unscored: v.IsUnscored(r.Score),
		})
	}
	for _, o := range v.Options {
		resp.Options = append(resp.Options, optionView{Score: o.Score, Label: o.Label, Color: o.Color})
	}
	if region, ok := snap.SelectedRegion(); ok {
		resp.Selected = region.ID
		resp.Prompt = v.PickText(region.Name)
	}
	for _, n := range notices {
		resp.Notices = append(resp.Notices, noticeView{Kind: string(n.Kind), Text: n.Text})
	}

	return resp
}
