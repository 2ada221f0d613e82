package stock

// Aritmética de stock en unidades base. Toda la lógica de cantidades opera
// sobre el total expandido (bultos * factor + unidades) y se re-normaliza al
// final, de modo que los intermedios negativos no dejan residuos inválidos.

// TotalBaseUnits expande un par (bultos, unidades) a unidades base.
func TotalBaseUnits(bundles, units, unitsPerBundle int) int {
	return bundles*unitsPerBundle + units
}

// Normalize reparte un total de unidades base en (bultos, unidades) con
// división euclidiana: el resto queda siempre en [0, unitsPerBundle) aunque
// el total sea negativo. La división truncada de Go produciría restos
// negativos, por eso no se usa directamente.
func Normalize(totalUnits, unitsPerBundle int) (bundles, units int) {
	bundles = floorDiv(totalUnits, unitsPerBundle)
	units = totalUnits - bundles*unitsPerBundle
	return bundles, units
}

// SignedDelta calcula el cambio en unidades base para un movimiento.
// Las ventas restan; todos los demás tipos suman tal cual se reciben.
func SignedDelta(bundleChange, unitChange, unitsPerBundle, sign int) int {
	return (bundleChange*unitsPerBundle + unitChange) * sign
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
