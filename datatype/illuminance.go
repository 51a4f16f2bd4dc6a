package datatype

import "math"

// luxPerFc is the number of lux in one footcandle.
const luxPerFc = 10.7639

// Illuminance is the luminous flux incident on a surface per unit area.
// Units: lux (SI, base) and fc (IP).
type Illuminance struct {
	baseType
}

// NewIlluminance creates an Illuminance data type.
func NewIlluminance() *Illuminance {
	return &Illuminance{baseType{
		name:         "Illuminance",
		units:        []string{"lux", "fc"},
		siUnit:       "lux",
		ipUnit:       "fc",
		abbreviation: "Ev",
		min:          0,
		max:          math.Inf(1),
		toBase: map[string]float64{
			"lux": 1,
			"fc":  luxPerFc,
		},
	}}
}

// ToDict returns the serializable representation of the type.
func (d *Illuminance) ToDict() map[string]any {
	return map[string]any{
		"name":      d.name,
		"data_type": "Illuminance",
	}
}
