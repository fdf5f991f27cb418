package nakama

import (
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"rummikub/internal/app"
	"rummikub/internal/domain"
)

// Conversions into the generic JSON shapes accepted by structpb. Every list
// must be []interface{} and every string-kinded type converted to string.

func tilesToList(tiles []domain.Tile) []interface{} {
	out := make([]interface{}, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, t.String())
	}
	return out
}

func groupsToList(groups []domain.Group) []interface{} {
	out := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		out = append(out, tilesToList(g))
	}
	return out
}

func stringsToList(ss []string) []interface{} {
	out := make([]interface{}, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func recordToMap(r app.Record) map[string]interface{} {
	return map[string]interface{}{
		"wins":        r.Wins,
		"losses":      r.Losses,
		"ties":        r.Ties,
		"win_percent": r.WinPercent(),
	}
}

func reportToMap(r app.Report) map[string]interface{} {
	players := make([]interface{}, 0, len(r.Players))
	for _, p := range r.Players {
		row := recordToMap(p.Record)
		row["name"] = p.Name
		row["first_cold_start"] = recordToMap(p.FirstColdStart)
		players = append(players, row)
	}
	return map[string]interface{}{
		// Seeds exceed the float64 mantissa; keep them exact as strings.
		"seed":             strconv.FormatInt(r.Seed, 10),
		"games":            r.Games,
		"empty_hand_wins":  r.EmptyHandWins,
		"deck_exhaustions": r.DeckExhaustions,
		"ties":             r.Ties,
		"no_cold_start":    r.NoColdStart,
		"avg_rounds":       r.AvgRounds,
		"players":          players,
		"first_cold_start": recordToMap(r.FirstColdStart),
		"average_not_first": map[string]interface{}{
			"wins":        r.AverageNotFirst.Wins,
			"losses":      r.AverageNotFirst.Losses,
			"win_percent": r.AverageNotFirst.WinPercent,
		},
	}
}

func outcomeToMap(o domain.Outcome) map[string]interface{} {
	return map[string]interface{}{
		"game_id":          o.GameID,
		"phase":            string(o.Phase),
		"winners":          stringsToList(o.Winners),
		"first_cold_start": o.FirstColdStart,
		"rounds":           o.Rounds,
		"players":          stringsToList(o.Players),
	}
}

func eventToMap(ev app.Event) map[string]interface{} {
	out := map[string]interface{}{
		"kind": string(ev.Kind),
	}
	if len(ev.Recipients) > 0 {
		out["recipients"] = stringsToList(ev.Recipients)
	}

	var payload map[string]interface{}
	switch p := ev.Payload.(type) {
	case app.GameStartedPayload:
		payload = map[string]interface{}{
			"game_id":              p.GameID,
			"players":              stringsToList(p.Players),
			"hand_size":            p.Options.HandSize,
			"cold_start_enabled":   p.Options.ColdStartEnabled,
			"cold_start_threshold": p.Options.ColdStartThreshold,
			"deck":                 p.Deck,
		}
	case app.HandDealtPayload:
		payload = map[string]interface{}{"player": p.Player, "hand": tilesToList(p.Hand)}
	case app.ColdStartPassedPayload:
		payload = map[string]interface{}{
			"player": p.Player,
			"round":  p.Round,
			"points": p.Points,
			"melds":  groupsToList(p.Melds),
			"first":  p.First,
		}
	case app.ColdStartMissedPayload:
		payload = map[string]interface{}{"player": p.Player, "round": p.Round, "points": p.Points}
	case app.TilesPlayedPayload:
		payload = map[string]interface{}{
			"player":    p.Player,
			"round":     p.Round,
			"action":    p.Kind.String(),
			"tiles":     tilesToList(p.Tiles),
			"groups":    groupsToList(p.Groups),
			"hand_left": p.HandLeft,
		}
	case app.TileDrawnPayload:
		payload = map[string]interface{}{"player": p.Player, "round": p.Round, "tile": p.Tile.String()}
	case app.TurnSkippedPayload:
		payload = map[string]interface{}{"player": p.Player, "round": p.Round}
	case app.ProposalRejectedPayload:
		payload = map[string]interface{}{"player": p.Player, "round": p.Round, "rejected": p.Rejected}
	case app.GameEndedPayload:
		payload = map[string]interface{}{
			"game_id":          p.GameID,
			"phase":            string(p.Phase),
			"winners":          stringsToList(p.Winners),
			"first_cold_start": p.FirstColdStart,
			"rounds":           p.Rounds,
		}
	}
	if payload != nil {
		out["payload"] = payload
	}
	return out
}

func eventsToList(events []app.Event) []interface{} {
	out := make([]interface{}, 0, len(events))
	for _, ev := range events {
		out = append(out, eventToMap(ev))
	}
	return out
}

// timestampString renders ts in the protobuf JSON form (RFC 3339, UTC).
func timestampString(ts *timestamppb.Timestamp) (string, error) {
	data, err := protojson.Marshal(ts)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

// marshalResponse encodes fields as a protobuf Struct in JSON form.
func marshalResponse(fields map[string]interface{}) (string, error) {
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return "", fmt.Errorf("failed to build response struct: %w", err)
	}
	data, err := protojson.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(data), nil
}
