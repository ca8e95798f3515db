package material

// ===============================
// Material Units
// ===============================

type Unit string

const (
	UnitBags       Unit = "bags"
	UnitKg         Unit = "kg"
	UnitTon        Unit = "ton"
	UnitPieces     Unit = "pieces"
	UnitCubicMeter Unit = "cubic_meter"
	UnitSqFt       Unit = "sq_ft"
)

var validUnits = map[Unit]bool{
	UnitBags:       true,
	UnitKg:         true,
	UnitTon:        true,
	UnitPieces:     true,
	UnitCubicMeter: true,
	UnitSqFt:       true,
}

func IsValidUnit(u string) bool {
	return validUnits[Unit(u)]
}
