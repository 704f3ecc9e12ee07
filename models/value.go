package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValueKind identifies which variant a FieldValue holds.
type ValueKind int

const (
	// ValueAbsent is the missing/cleared value; it is the zero FieldValue.
	ValueAbsent ValueKind = iota
	// ValueString holds free text.
	ValueString
	// ValueNumber holds a float64.
	ValueNumber
	// ValueInstances holds a whole sub-SKU instance sequence.
	ValueInstances
	// ValueImage holds an image reference.
	ValueImage
)

func (k ValueKind) String() string {
	switch k {
	case ValueAbsent:
		return "absent"
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	case ValueInstances:
		return "instances"
	case ValueImage:
		return "image"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// FieldValue is the closed set of value shapes a draft field can carry.
// Attribute bags hold only the absent, string and number kinds; the instances
// and image kinds exist so one edit payload type covers every addressable
// field. Validators dispatch on Kind instead of probing runtime types.
type FieldValue struct {
	kind      ValueKind
	str       string
	num       float64
	instances []SubSkuInstance
	image     *ImageRef
}

// AbsentValue returns the absent variant; assigning it clears the target field.
func AbsentValue() FieldValue {
	return FieldValue{kind: ValueAbsent}
}

// StringValue wraps s.
func StringValue(s string) FieldValue {
	return FieldValue{kind: ValueString, str: s}
}

// NumberValue wraps n.
func NumberValue(n float64) FieldValue {
	return FieldValue{kind: ValueNumber, num: n}
}

// InstancesValue wraps a sub-SKU instance sequence. The slice is copied so
// later edits by the caller cannot reach into a draft.
func InstancesValue(instances []SubSkuInstance) FieldValue {
	cp := make([]SubSkuInstance, len(instances))
	copy(cp, instances)
	return FieldValue{kind: ValueInstances, instances: cp}
}

// ImageValue wraps an image reference.
func ImageValue(ref ImageRef) FieldValue {
	return FieldValue{kind: ValueImage, image: &ref}
}

// Kind reports which variant is held.
func (v FieldValue) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether the value is the absent variant.
func (v FieldValue) IsAbsent() bool {
	return v.kind == ValueAbsent
}

// AsString returns the held string; ok is false for every other kind.
func (v FieldValue) AsString() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the held number; ok is false for every other kind.
func (v FieldValue) AsNumber() (float64, bool) {
	if v.kind != ValueNumber {
		return 0, false
	}
	return v.num, true
}

// AsInstances returns a copy of the held instance sequence; ok is false for
// every other kind.
func (v FieldValue) AsInstances() ([]SubSkuInstance, bool) {
	if v.kind != ValueInstances {
		return nil, false
	}
	cp := make([]SubSkuInstance, len(v.instances))
	copy(cp, v.instances)
	return cp, true
}

// AsImage returns the held image reference; ok is false for every other kind.
func (v FieldValue) AsImage() (ImageRef, bool) {
	if v.kind != ValueImage || v.image == nil {
		return ImageRef{}, false
	}
	return *v.image, true
}

// MarshalJSON writes the bare value: null for absent, the raw string or number
// otherwise. Only the attribute-bag kinds serialize; instances and image
// values never appear inside an attributes bag.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueAbsent:
		return []byte("null"), nil
	case ValueString:
		return json.Marshal(v.str)
	case ValueNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	default:
		return nil, fmt.Errorf("field value kind %s is not serializable", v.kind)
	}
}

// UnmarshalJSON accepts null, a JSON string or a JSON number.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = AbsentValue()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	return fmt.Errorf("attribute value must be a string, a number or null, got %s", string(data))
}
