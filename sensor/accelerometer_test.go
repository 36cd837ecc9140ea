package sensor

import (
	"reflect"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	b, err := Generate(3, 128)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(b.Sensors) != 3 {
		t.Fatalf("sensors=%d want=3", len(b.Sensors))
	}
	for s, sd := range b.Sensors {
		if sd.Len() != 128 || len(sd.X) != 128 || len(sd.Y) != 128 || len(sd.Z) != 128 {
			t.Fatalf("sensor %d has inconsistent lengths", s)
		}
		if sd.Timestamps[0] != int32(s*128*TimestampStep) {
			t.Fatalf("sensor %d first timestamp=%d", s, sd.Timestamps[0])
		}
		for i := 1; i < sd.Len(); i++ {
			if sd.Timestamps[i]-sd.Timestamps[i-1] != TimestampStep {
				t.Fatalf("sensor %d timestamp step at %d", s, i)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(2, 64, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(2, 64, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different batches")
	}

	c, err := Generate(2, 64, WithSeed(8))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.Sensors[0].X, c.Sensors[0].X) {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestGenerateAmplitudeRange(t *testing.T) {
	b, err := Generate(1, 512)
	if err != nil {
		t.Fatal(err)
	}
	// |wave| <= 1.5 and sensor 0 noise is within +-0.15.
	limit := int32(1.3*1.5*accScale) + 1
	for _, axis := range [][]int32{b.Sensors[0].X, b.Sensors[0].Y, b.Sensors[0].Z} {
		for i, v := range axis {
			if v > limit || v < -limit {
				t.Fatalf("sample %d=%d outside +-%d", i, v, limit)
			}
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	if _, err := Generate(0, 10); err == nil {
		t.Fatal("expected error for zero sensors")
	}
	if _, err := Generate(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestMADInput(t *testing.T) {
	sd := SensorData{
		Timestamps: []int32{0, 20},
		X:          []int32{1, 2},
		Y:          []int32{3, 4},
		Z:          []int32{5, 6},
	}
	rows := sd.MADInput()
	if len(rows) != 4 || rows[0][1] != 20 || rows[3][0] != 5 {
		t.Fatalf("unexpected MAD layout: %v", rows)
	}
}
