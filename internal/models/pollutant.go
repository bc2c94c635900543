package models

// Pollutant is one of the six monitored pollutant codes
type Pollutant string

const (
	PollutantO2  Pollutant = "O2"
	PollutantNO3 Pollutant = "NO3"
	PollutantNO2 Pollutant = "NO2"
	PollutantSO4 Pollutant = "SO4"
	PollutantPO4 Pollutant = "PO4"
	PollutantCL  Pollutant = "CL"
)

// PollutantOrder is the fixed enumeration order used everywhere:
// model output, report cards and chart series all follow it
var PollutantOrder = []Pollutant{
	PollutantO2,
	PollutantNO3,
	PollutantNO2,
	PollutantSO4,
	PollutantPO4,
	PollutantCL,
}

// SafeLimits maps each pollutant to its advisory threshold in mg/L.
// Constant for the process lifetime.
var SafeLimits = map[Pollutant]float64{
	PollutantO2:  5.0,
	PollutantNO3: 10.0,
	PollutantNO2: 0.1,
	PollutantSO4: 250.0,
	PollutantPO4: 0.1,
	PollutantCL:  250.0,
}

// Unit is the implicit concentration unit for all readings
const Unit = "mg/L"

// PollutantInfo is the educational reference entry served to the frontend
type PollutantInfo struct {
	Code        Pollutant `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SafeLimit   float64   `json:"safe_limit"`
	Unit        string    `json:"unit"`
}

// PollutantReference describes each monitored pollutant, in enumeration order
var PollutantReference = []PollutantInfo{
	{
		Code:        PollutantO2,
		Name:        "Dissolved Oxygen",
		Description: "Essential for aquatic life. Should be above 5 mg/L.",
		SafeLimit:   SafeLimits[PollutantO2],
		Unit:        Unit,
	},
	{
		Code:        PollutantNO3,
		Name:        "Nitrate",
		Description: "From fertilizers and sewage. Can cause eutrophication and health risks if too high.",
		SafeLimit:   SafeLimits[PollutantNO3],
		Unit:        Unit,
	},
	{
		Code:        PollutantNO2,
		Name:        "Nitrite",
		Description: "Toxic even at low levels. Should be below 0.1 mg/L.",
		SafeLimit:   SafeLimits[PollutantNO2],
		Unit:        Unit,
	},
	{
		Code:        PollutantSO4,
		Name:        "Sulfate",
		Description: "Naturally occurring; above 250 mg/L affects taste and corrosion and can cause digestive issues.",
		SafeLimit:   SafeLimits[PollutantSO4],
		Unit:        Unit,
	},
	{
		Code:        PollutantPO4,
		Name:        "Phosphate",
		Description: "Promotes algal blooms. Should be below 0.1 mg/L.",
		SafeLimit:   SafeLimits[PollutantPO4],
		Unit:        Unit,
	},
	{
		Code:        PollutantCL,
		Name:        "Chloride",
		Description: "Affects water taste; can be toxic to freshwater species at high levels.",
		SafeLimit:   SafeLimits[PollutantCL],
		Unit:        Unit,
	},
}
