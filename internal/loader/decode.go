package loader

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/pable/go-cricket-metrics/internal/model"
)

// Decode parses one match record. Absent or null fields decode to zero
// values; only structural problems that make the record unusable are
// reported as errors, and the error text is the skip reason.
func Decode(data []byte) (*model.MatchDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("root is not an object")
	}

	doc := &model.MatchDocument{Info: decodeInfo(root.Get("info"))}
	if n := len(doc.Info.Teams); n < 2 {
		return nil, fmt.Errorf("expected two teams, found %d", n)
	}

	innings := root.Get("innings")
	if innings.Exists() && innings.Type != gjson.Null && !innings.IsArray() {
		return nil, errors.New("innings is not an array")
	}
	for i, in := range innings.Array() {
		if !in.IsObject() {
			return nil, fmt.Errorf("innings %d is not an object", i)
		}
		inn := model.Innings{Team: in.Get("team").String()}
		for j, ov := range in.Get("overs").Array() {
			if !ov.IsObject() {
				return nil, fmt.Errorf("innings %d over %d is not an object", i, j)
			}
			inn.Overs = append(inn.Overs, decodeOver(ov))
		}
		doc.Innings = append(doc.Innings, inn)
	}
	return doc, nil
}

func decodeInfo(info gjson.Result) model.Info {
	out := model.Info{
		Event: model.Event{
			Name:        info.Get("event.name").String(),
			MatchNumber: info.Get("event.match_number").String(),
		},
		Season: info.Get("season").String(),
		Venue:  info.Get("venue").String(),
		City:   info.Get("city").String(),
		Teams:  stringArray(info.Get("teams")),
		Dates:  stringArray(info.Get("dates")),
		Winner: info.Get("outcome.winner").String(),
	}
	if players := info.Get("players"); players.IsObject() {
		out.Players = make(map[string][]string)
		players.ForEach(func(team, xi gjson.Result) bool {
			out.Players[team.String()] = stringArray(xi)
			return true
		})
	}
	return out
}

func decodeOver(ov gjson.Result) model.Over {
	o := model.Over{Number: int(ov.Get("over").Int())}
	for _, d := range ov.Get("deliveries").Array() {
		if !d.IsObject() {
			continue
		}
		o.Deliveries = append(o.Deliveries, decodeDelivery(d))
	}
	return o
}

func decodeDelivery(d gjson.Result) model.Delivery {
	out := model.Delivery{
		Batter:     d.Get("batter").String(),
		NonStriker: d.Get("non_striker").String(),
		Bowler:     d.Get("bowler").String(),
		Runs: model.Runs{
			Batter: int(d.Get("runs.batter").Int()),
			Extras: int(d.Get("runs.extras").Int()),
			Total:  int(d.Get("runs.total").Int()),
		},
	}
	if extras := d.Get("extras"); extras.IsObject() {
		extras.ForEach(func(kind, n gjson.Result) bool {
			if out.Extras == nil {
				out.Extras = make(map[string]int)
			}
			out.Extras[kind.String()] = int(n.Int())
			return true
		})
	}
	for _, w := range d.Get("wickets").Array() {
		if !w.IsObject() {
			continue
		}
		wk := model.Wicket{
			PlayerOut: w.Get("player_out").String(),
			Kind:      w.Get("kind").String(),
		}
		for _, f := range w.Get("fielders").Array() {
			// Fielders are usually {"name": ...} but older records list bare names.
			name := f.String()
			if f.IsObject() {
				name = f.Get("name").String()
			}
			if name != "" {
				wk.Fielders = append(wk.Fielders, name)
			}
		}
		out.Wickets = append(out.Wickets, wk)
	}
	return out
}

// stringArray collects the string elements of a JSON array.
func stringArray(arr gjson.Result) []string {
	var out []string
	for _, v := range arr.Array() {
		if v.Type == gjson.String {
			out = append(out, v.String())
		}
	}
	return out
}
