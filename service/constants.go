package service

const (
	// Correction indices by asset type.
	RealEstateIndexName = "INCC"
	RealEstateIndexRate = 0.065 // a.a.
	VehicleIndexName    = "IPCA"
	VehicleIndexRate    = 0.045 // a.a.

	// InflationSpread is the assumed inflation added to the real rate of
	// inflation-linked investments.
	InflationSpread    = 0.045
	InflationIndexNote = "IPCA (4,50% a.a.)"

	MonthsPerYear = 12

	// Limite do intervalo de meses avaliados na comparação de cenários
	MaxScenarioRangeMonths = 120
)

// taxBracket is one step of the regressive income tax table on fixed income.
type taxBracket struct {
	upToMonths int
	rate       float64
}

var taxBrackets = []taxBracket{
	{upToMonths: 6, rate: 0.225},
	{upToMonths: 12, rate: 0.20},
	{upToMonths: 24, rate: 0.175},
}

const longTermTaxRate = 0.15
