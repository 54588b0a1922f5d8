package pb

import (
	"bytes"
	"encoding/hex"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestDescriptor(t *testing.T) {
	fd := File_blinkenlight_proto
	if fd.Package() != "blinkenlight.v1" {
		t.Fatalf("invalid package: %s", fd.Package())
	}

	svc := fd.Services().ByName("Blinkenlight")
	if svc == nil || svc.Methods().Len() != len(Blinkenlight_ServiceDesc.Methods) {
		t.Fatalf("invalid service descriptor: %v", svc)
	}
	for _, m := range Blinkenlight_ServiceDesc.Methods {
		if svc.Methods().ByName(protoreflect.Name(m.MethodName)) == nil {
			t.Fatalf("method %s missing from descriptor", m.MethodName)
		}
	}

	field := (&Control{}).ProtoReflect().Descriptor().Fields().ByName("direction")
	if field.Enum().FullName() != "blinkenlight.v1.Direction" {
		t.Fatalf("invalid direction field: %v", field)
	}
	if Direction_DIRECTION_OUTPUT.String() != "DIRECTION_OUTPUT" || BoardState_BOARD_STATE_TEST.String() != "BOARD_STATE_TEST" {
		t.Fatalf("invalid enum names")
	}
}

func TestControlValuesWire(t *testing.T) {
	msg := &ControlValues{Handle: 1, Values: []uint64{1, 300}, ForceAll: true}

	raw, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("could not marshal: %+v", err)
	}
	want, _ := hex.DecodeString("0801" + "120301ac02" + "1801")
	if !bytes.Equal(raw, want) {
		t.Fatalf("invalid encoding:\ngot= %x\nwant=%x", raw, want)
	}

	for _, tc := range []struct {
		name string
		raw  string
		want *ControlValues
	}{
		{
			name: "packed",
			raw:  "0801120301ac021801",
			want: msg,
		},
		{
			name: "unpacked",
			raw:  "08011001" + "10ac02",
			want: &ControlValues{Handle: 1, Values: []uint64{1, 300}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tc.raw)
			if err != nil {
				t.Fatalf("invalid test data: %+v", err)
			}
			got := new(ControlValues)
			if err := proto.Unmarshal(raw, got); err != nil {
				t.Fatalf("could not unmarshal: %+v", err)
			}
			if !proto.Equal(got, tc.want) {
				t.Fatalf("invalid message:\ngot= %v\nwant=%v", got, tc.want)
			}
		})
	}
}

func TestUnknownField(t *testing.T) {
	raw, _ := hex.DecodeString("7a026869" + "0805")
	got := new(ControlValues)
	if err := proto.Unmarshal(raw, got); err != nil {
		t.Fatalf("could not unmarshal: %+v", err)
	}
	if got.GetHandle() != 5 || len(got.GetValues()) != 0 {
		t.Fatalf("invalid message: %v", got)
	}
	if unknown := got.ProtoReflect().GetUnknown(); len(unknown) != 4 {
		t.Fatalf("unknown field not kept: %x", unknown)
	}
}

func TestPanelListWire(t *testing.T) {
	msg := &PanelList{Panels: []*Panel{
		{
			Handle:       0,
			Name:         "pdp8i",
			Info:         "PDP-8/I",
			DefaultRadix: 8,
			Controls: []*Control{
				{Handle: 0, Name: "sr", Direction: Direction_DIRECTION_INPUT, Type: "switch", Radix: 8, ValueBitlen: 12, ValueBytelen: 2},
				{Handle: 1, Name: "pc", Direction: Direction_DIRECTION_OUTPUT, Radix: 8, ValueBitlen: 12, ValueBytelen: 2},
			},
			InputsCount:       1,
			OutputsCount:      1,
			InputsValueBytes:  2,
			OutputsValueBytes: 2,
		},
		{Handle: 1, Name: "empty"},
	}}

	raw, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("could not marshal: %+v", err)
	}

	got := new(PanelList)
	if err := proto.Unmarshal(raw, got); err != nil {
		t.Fatalf("could not unmarshal: %+v", err)
	}
	if !proto.Equal(got, msg) {
		t.Fatalf("invalid round trip:\ngot= %v\nwant=%v", got, msg)
	}
}

func TestNegativeHandle(t *testing.T) {
	raw, _ := proto.Marshal(&PanelRequest{Handle: -1})
	if len(raw) != 11 {
		t.Fatalf("invalid int32 encoding: %x", raw)
	}
	got := new(PanelRequest)
	if err := proto.Unmarshal(raw, got); err != nil || got.GetHandle() != -1 {
		t.Fatalf("invalid decoding: handle=%d err=%v", got.GetHandle(), err)
	}
}

func TestTruncated(t *testing.T) {
	if err := proto.Unmarshal([]byte{0x0a, 0x05, 0x01}, new(Panel)); err == nil {
		t.Fatalf("expected an error for a truncated message")
	}
}
