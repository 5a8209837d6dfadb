package classifier

import (
	"math"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mcoot/courtbot/internal/model"
)

// jsonObject finds the outermost {...} block; models like to wrap JSON in
// markdown fences or prose
var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// ParseIntent converts raw classifier output into an Intent. It never fails:
// anything that is not a JSON object with a known action becomes Irrelevant,
// and fields of the wrong type are treated as absent.
func ParseIntent(raw string) model.Intent {
	intent, err := DecodeIntent(raw)
	if err != nil {
		return model.Irrelevant{Reason: err.Error()}
	}
	return intent
}

// DecodeIntent is ParseIntent for callers that need to know the output was
// unusable. It returns ErrMalformedOutput when raw holds no complete JSON
// object; a well-formed object with an unknown action or bad field types
// still decodes, to Irrelevant or with the fields absent.
func DecodeIntent(raw string) (model.Intent, error) {
	block := jsonObject.FindString(raw)
	if block == "" || !gjson.Valid(block) {
		return nil, model.ErrMalformedOutput
	}

	doc := gjson.Parse(block)
	if !doc.IsObject() {
		return nil, model.ErrMalformedOutput
	}

	return decodeObject(doc), nil
}

func decodeObject(doc gjson.Result) model.Intent {
	meta := model.Meta{Score: confidence(doc.Get("confidence"))}
	action := model.Action(strings.ToLower(stringField(doc, "action")))

	switch action {
	case model.ActionLocationUpdate:
		return model.LocationUpdate{Meta: meta, Location: stringField(doc, "location")}
	case model.ActionCourtUpdate:
		return model.CourtUpdate{Meta: meta}
	case model.ActionAddGuest:
		return model.AddGuest{
			Meta:      meta,
			Names:     guestNames(doc),
			Uncertain: strings.EqualFold(stringField(doc, "certainty"), "uncertain"),
			Responder: stringField(doc, "responder"),
		}
	case model.ActionRemoveGuest:
		return model.RemoveGuest{Meta: meta, Name: stringField(doc, "guestName")}
	case model.ActionRemovePlayer:
		return model.RemovePlayer{Meta: meta, Name: stringField(doc, "guestName")}
	case model.ActionRequestSpot:
		return model.RequestSpot{Meta: meta, Guest: stringField(doc, "guestName")}
	case model.ActionAskAvailability:
		return model.AskAvailability{Meta: meta, Guest: stringField(doc, "guestName")}
	case model.ActionStatusInquiry:
		return model.StatusInquiry{Meta: meta}
	case model.ActionIrrelevant:
		return model.Irrelevant{Meta: meta}
	default:
		return model.Irrelevant{Meta: meta, Reason: "unknown action " + string(action)}
	}
}

// stringField returns the trimmed string at path, or "" if it is missing or
// not a string
func stringField(doc gjson.Result, path string) string {
	v := doc.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// confidence returns a number in [0, 1]; missing or non-numeric is 0
func confidence(v gjson.Result) float64 {
	if v.Type != gjson.Number || math.IsNaN(v.Num) {
		return 0
	}
	return min(1, max(0, v.Num))
}

// guestNames prefers the guestNames array and falls back to guestName
func guestNames(doc gjson.Result) []string {
	var names []string
	if list := doc.Get("guestNames"); list.IsArray() {
		for _, v := range list.Array() {
			if v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
				names = append(names, strings.TrimSpace(v.Str))
			}
		}
	}
	if len(names) == 0 {
		if name := stringField(doc, "guestName"); name != "" {
			names = append(names, name)
		}
	}
	return names
}
