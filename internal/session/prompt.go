package session

import (
	"unicode"

	"torus-life/internal/core"
)

// Action identifies what a filename prompt will do once submitted.
type Action int

const (
	ActionSave Action = iota
	ActionSaveRegion
	ActionLoad
)

// Prompt collects a file name typed by the user. Whitespace and control
// characters are dropped, as names are single tokens.
type Prompt struct {
	Action Action
	Region core.Region
	text   []rune
}

// NewPrompt starts an empty prompt for action.
func NewPrompt(action Action) *Prompt { return &Prompt{Action: action} }

// NewRegionPrompt starts a prompt that saves region when submitted.
func NewRegionPrompt(region core.Region) *Prompt {
	return &Prompt{Action: ActionSaveRegion, Region: region}
}

// Insert appends r unless it is whitespace or a control character.
func (p *Prompt) Insert(r rune) {
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return
	}
	p.text = append(p.text, r)
}

// Backspace removes the last rune.
func (p *Prompt) Backspace() {
	if len(p.text) > 0 {
		p.text = p.text[:len(p.text)-1]
	}
}

// Text returns the name typed so far.
func (p *Prompt) Text() string { return string(p.text) }

// Label describes the pending action.
func (p *Prompt) Label() string {
	switch p.Action {
	case ActionSaveRegion:
		return "save selection as"
	case ActionLoad:
		return "load"
	default:
		return "save as"
	}
}

func (p *Prompt) String() string { return p.Label() + " >> " + p.Text() }

// Submit runs the prompt's action against s.
func (s *Session) Submit(p *Prompt) error {
	var err error
	switch p.Action {
	case ActionSave:
		_, err = s.Save(p.Text(), nil)
	case ActionSaveRegion:
		region := p.Region
		_, err = s.Save(p.Text(), &region)
	case ActionLoad:
		_, err = s.Load(p.Text())
	}
	return err
}

// Help lists the key bindings shared by the interactive drivers.
func Help() string {
	return "[S]ave  [L]oad  [C]lear  [R]andom  [P]ause  [N] step  [Q]uit\n" +
		"click toggles a cell, drag saves the selection, 1-6 place a pattern at the cursor"
}

// PatternKeys maps the digit keys to pattern names in registry order.
func PatternKeys() []string {
	return core.PatternNames()
}
