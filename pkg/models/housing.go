package models

// HouseSpec is the smart-home equipment specification of a house config.
type HouseSpec struct {
	Insulation string  `json:"insulation"`
	Glazing    string  `json:"glazing"`
	HVAC       string  `json:"hvac"`
	SolarKW    float64 `json:"solar_kw"`
	BatteryKWh float64 `json:"battery_kwh"`
	SmartHome  bool    `json:"smart_home"`
}

// HouseConfig is a sellable modular house model.
type HouseConfig struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ModelType   string    `json:"model_type"`
	NumModules  int       `json:"num_modules"`
	FloorAreaM2 float64   `json:"floor_area_m2"`
	NumFloors   int       `json:"num_floors"`
	Spec        HouseSpec `json:"spec"`
	Provenance
}

// Home unit lifecycle statuses.
const (
	HomeUnitManufacturing = "manufacturing"
	HomeUnitShipped       = "shipped"
	HomeUnitInstalled     = "installed"
	HomeUnitActive        = "active"
)

// HomeUnit is a delivered, serial-numbered house instance.
type HomeUnit struct {
	ID               string `json:"id"`
	HouseConfigID    string `json:"house_config_id"`
	SerialNumber     string `json:"serial_number"`
	OwnerName        string `json:"owner_name"`
	InstallationDate string `json:"installation_date"`
	Location         string `json:"location"`
	Status           string `json:"status"`
	Provenance
}
