package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/framedata/internal/fighter"
)

// eventDoc decodes a tagged event mapping such as
//
//	{type: goto, offset: 0x1a0}
//
// A bare scalar is shorthand for an event without fields ("nop").
type eventDoc struct {
	ev fighter.Event
}

func (d *eventDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		switch n.Value {
		case "nop":
			d.ev = fighter.Nop{}
		case "delete_all_hitboxes":
			d.ev = fighter.DeleteAllHitBoxes{}
		default:
			d.ev = fighter.Unknown{Raw: n.Value}
		}
		return nil
	}

	var head struct {
		Type string `yaml:"type"`
	}
	if err := n.Decode(&head); err != nil {
		return err
	}
	if head.Type == "" {
		return fmt.Errorf("line %d: event has no type", n.Line)
	}

	ev, err := decodeEvent(head.Type, n)
	if err != nil {
		return fmt.Errorf("line %d: %s event: %w", n.Line, head.Type, err)
	}
	d.ev = ev
	return nil
}

func decodeEvent(typ string, n *yaml.Node) (fighter.Event, error) {
	switch typ {
	case "nop":
		return fighter.Nop{}, nil

	case "change_action":
		var v struct {
			Action int      `yaml:"action"`
			Test   *exprDoc `yaml:"test"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.ChangeAction{ActionIndex: v.Action, Test: v.Test.expr()}, nil

	case "change_action_status":
		var v struct {
			Status      int      `yaml:"status"`
			Action      int      `yaml:"action"`
			Requirement *exprDoc `yaml:"requirement"`
			Flip        bool     `yaml:"flip"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.ChangeActionStatus{
			StatusID:    v.Status,
			ActionIndex: v.Action,
			Requirement: v.Requirement.expr(),
			Flip:        v.Flip,
		}, nil

	case "change_subaction", "change_subaction_restart_frame":
		var v struct {
			Index int `yaml:"index"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		if typ == "change_subaction" {
			return fighter.ChangeSubaction{Index: v.Index}, nil
		}
		return fighter.ChangeSubactionRestartFrame{Index: v.Index}, nil

	case "if":
		var v struct {
			Test *exprDoc   `yaml:"test"`
			Then []eventDoc `yaml:"then"`
			Else []eventDoc `yaml:"else"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		stmt := fighter.IfStatement{Test: v.Test.expr(), Then: events(v.Then)}
		if hasKey(n, "else") {
			stmt.Else = events(v.Else)
			if stmt.Else == nil {
				stmt.Else = []fighter.Event{}
			}
		}
		return stmt, nil

	case "goto", "subroutine":
		var v struct {
			Offset uint32 `yaml:"offset"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		if typ == "goto" {
			return fighter.Goto{Offset: v.Offset}, nil
		}
		return fighter.Subroutine{Offset: v.Offset}, nil

	case "sync_wait":
		var v struct {
			Frames float32 `yaml:"frames"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.SyncWait{Frames: v.Frames}, nil

	case "async_wait":
		var v struct {
			Frame float32 `yaml:"frame"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.AsyncWait{Frame: v.Frame}, nil

	case "create_hitbox":
		var v struct {
			HitboxID uint8   `yaml:"hitbox_id"`
			Bone     int     `yaml:"bone"`
			SetID    uint8   `yaml:"set_id"`
			Damage   float32 `yaml:"damage"`
			Angle    int     `yaml:"angle"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.CreateHitBox{
			HitboxID:  v.HitboxID,
			BoneIndex: v.Bone,
			SetID:     v.SetID,
			Damage:    v.Damage,
			Angle:     v.Angle,
		}, nil

	case "delete_all_hitboxes":
		return fighter.DeleteAllHitBoxes{}, nil

	case "sound_effect":
		var v struct {
			ID int `yaml:"id"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.SoundEffect{ID: v.ID}, nil

	case "graphic_effect":
		var v struct {
			ID   int `yaml:"id"`
			Bone int `yaml:"bone"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.GraphicEffect{ID: v.ID, Bone: v.Bone}, nil

	case "set_variable":
		var v struct {
			Variable uint32 `yaml:"variable"`
			Value    int32  `yaml:"value"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.SetVariable{Variable: v.Variable, Value: v.Value}, nil

	case "unknown":
		var v struct {
			Raw string `yaml:"raw"`
		}
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return fighter.Unknown{Raw: v.Raw}, nil

	default:
		// Events the tool has no model for are kept and shown raw.
		return fighter.Unknown{Raw: typ}, nil
	}
}

// hasKey reports whether mapping node n has key.
func hasKey(n *yaml.Node, key string) bool {
	if n.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

// exprDoc decodes an expression. A bare scalar is a nullary requirement;
// mappings use one of the keys requirement (with optional arg), op, not,
// variable, value or scalar.
type exprDoc struct {
	e fighter.Expression
}

func (d *exprDoc) expr() fighter.Expression {
	if d == nil {
		return nil
	}
	return d.e
}

func (d *exprDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		d.e = fighter.Nullary{Requirement: fighter.Requirement(n.Value)}
		return nil
	}

	var v struct {
		Requirement string   `yaml:"requirement"`
		Arg         *exprDoc `yaml:"arg"`
		Op          string   `yaml:"op"`
		Left        *exprDoc `yaml:"left"`
		Right       *exprDoc `yaml:"right"`
		Not         *exprDoc `yaml:"not"`
		Variable    *uint32  `yaml:"variable"`
		Value       *int32   `yaml:"value"`
		Scalar      *float32 `yaml:"scalar"`
	}
	if err := n.Decode(&v); err != nil {
		return err
	}

	switch {
	case v.Op != "":
		d.e = fighter.Binary{Left: v.Left.expr(), Operator: fighter.Operator(v.Op), Right: v.Right.expr()}
	case v.Not != nil:
		d.e = fighter.Not{Expr: v.Not.expr()}
	case v.Requirement != "" && v.Arg != nil:
		d.e = fighter.Unary{Requirement: fighter.Requirement(v.Requirement), Operand: v.Arg.expr()}
	case v.Requirement != "":
		d.e = fighter.Nullary{Requirement: fighter.Requirement(v.Requirement)}
	case v.Variable != nil:
		d.e = fighter.Variable{ID: *v.Variable}
	case v.Value != nil:
		d.e = fighter.Value{V: *v.Value}
	case v.Scalar != nil:
		d.e = fighter.Scalar{V: *v.Scalar}
	default:
		return fmt.Errorf("line %d: expression has none of requirement, op, not, variable, value, scalar", n.Line)
	}
	return nil
}

// collisionDoc decodes a hitbox slot. kind is "hit" (the default) or
// "grab"; omitted hit fields take fighter.DefaultHitValues.
type collisionDoc struct {
	entry fighter.CollisionEntry
}

func (d *collisionDoc) UnmarshalYAML(n *yaml.Node) error {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := n.Decode(&head); err != nil {
		return err
	}

	switch head.Kind {
	case "", "hit":
		v := fighter.DefaultHitValues()
		if err := n.Decode(&v); err != nil {
			return err
		}
		d.entry = fighter.HitEntry{Values: v}
	case "grab":
		v := fighter.GrabValues{Enabled: true, Target: fighter.GrabTargetGroundedAndAerial}
		if err := n.Decode(&v); err != nil {
			return err
		}
		d.entry = fighter.GrabEntry{Values: v}
	default:
		return fmt.Errorf("line %d: unknown hitbox kind %q", n.Line, head.Kind)
	}
	return nil
}
