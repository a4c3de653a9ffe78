package wire

import (
	"encoding/json"
	"fmt"

	"github.com/boergens/docedit/model"
	"github.com/boergens/docedit/transform"
)

type stepJSON struct {
	StepType  string     `json:"stepType" yaml:"stepType"`
	From      int        `json:"from" yaml:"from"`
	To        int        `json:"to" yaml:"to"`
	GapFrom   int        `json:"gapFrom,omitempty" yaml:"gapFrom,omitempty"`
	GapTo     int        `json:"gapTo,omitempty" yaml:"gapTo,omitempty"`
	Insert    int        `json:"insert,omitempty" yaml:"insert,omitempty"`
	Structure bool       `json:"structure,omitempty" yaml:"structure,omitempty"`
	Slice     *sliceJSON `json:"slice,omitempty" yaml:"slice,omitempty"`
	Mark      *markJSON  `json:"mark,omitempty" yaml:"mark,omitempty"`
}

// EncodeStep renders a Step to its logical JSON shape.
func EncodeStep(s transform.Step) ([]byte, error) {
	j, err := encodeStep(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}

// DecodeStep parses a Step from its logical JSON shape.
func DecodeStep(data []byte) (transform.Step, error) {
	var j stepJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}
	return decodeStep(j)
}

func encodeStep(s transform.Step) (stepJSON, error) {
	switch st := s.(type) {
	case transform.ReplaceStep:
		slice := encodeSlice(st.Slice)
		return stepJSON{
			StepType: "replace", From: st.Span.From, To: st.Span.To,
			Slice: &slice, Structure: st.Structure,
		}, nil
	case transform.ReplaceAroundStep:
		slice := encodeSlice(st.Slice)
		return stepJSON{
			StepType: "replaceAround", From: st.Span.From, To: st.Span.To,
			GapFrom: st.GapFrom, GapTo: st.GapTo, Insert: st.Insert,
			Slice: &slice, Structure: st.Structure,
		}, nil
	case transform.AddMarkStep:
		mark := encodeMark(st.Mark)
		return stepJSON{StepType: "addMark", From: st.Span.From, To: st.Span.To, Mark: &mark}, nil
	case transform.RemoveMarkStep:
		mark := encodeMark(st.Mark)
		return stepJSON{StepType: "removeMark", From: st.Span.From, To: st.Span.To, Mark: &mark}, nil
	default:
		return stepJSON{}, fmt.Errorf("wire: unknown step type %T", s)
	}
}

func decodeStep(j stepJSON) (transform.Step, error) {
	span := transform.Span{From: j.From, To: j.To}
	switch j.StepType {
	case "replace":
		slice := model.EmptySlice
		if j.Slice != nil {
			s, err := decodeSlice(*j.Slice)
			if err != nil {
				return nil, err
			}
			slice = s
		}
		return transform.ReplaceStep{Span: span, Slice: slice, Structure: j.Structure}, nil
	case "replaceAround":
		slice := model.EmptySlice
		if j.Slice != nil {
			s, err := decodeSlice(*j.Slice)
			if err != nil {
				return nil, err
			}
			slice = s
		}
		return transform.ReplaceAroundStep{
			Span: span, GapFrom: j.GapFrom, GapTo: j.GapTo,
			Slice: slice, Insert: j.Insert, Structure: j.Structure,
		}, nil
	case "addMark":
		if j.Mark == nil {
			return nil, fmt.Errorf("wire: addMark step missing mark")
		}
		m, err := decodeMark(*j.Mark)
		if err != nil {
			return nil, err
		}
		return transform.AddMarkStep{Span: span, Mark: m}, nil
	case "removeMark":
		if j.Mark == nil {
			return nil, fmt.Errorf("wire: removeMark step missing mark")
		}
		m, err := decodeMark(*j.Mark)
		if err != nil {
			return nil, err
		}
		return transform.RemoveMarkStep{Span: span, Mark: m}, nil
	default:
		return nil, fmt.Errorf("wire: unknown stepType %q", j.StepType)
	}
}
