package service

const (
	DefaultFallbackRate        = 9.0  // piso de la tasa ofrecida sin producto
	FallbackRateReduction      = 3.0  // puntos por debajo de la tasa original
	DefaultFallbackTermMonths  = 24.0 // plazo cuando ni el préstamo ni el producto lo declaran
	DefaultAssumedOriginalRate = 15.0 // tasa base para estimar el ahorro

	LoanProductType    = "loan"
	ExternalLoanSource = "external"
	InternalLoanSource = "internal"
	SelfOriginBank     = "self"

	// Nombres tal como los muestra el banco.
	PromotedProductLabel        = "айтишная ипотека"
	DefaultProductName          = "Кредитное предложение банка"
	DefaultRefinanceProductName = "Рефинансирование банка"
)
