package parameter

// World Geometry (world units, mapped to terminal cells by the renderer)
const (
	WorldWidth  = 1024.0
	WorldHeight = 576.0

	// SkyHeight is the band clouds drift through
	SkyHeight = 300.0
)

// Cloud Field
const (
	CloudCount    = 4
	CloudMinX     = 0
	CloudMaxX     = 1024
	CloudMinY     = 32
	CloudMaxY     = 64
	CloudMinSpeed = 1
	CloudMaxSpeed = 2

	// Cloud scale bounds are tenths: 2..6 become 0.2..0.6
	CloudMinScale = 2
	CloudMaxScale = 6

	// CloudBleed is how far off-screen a cloud travels before wrapping
	CloudBleed = 100.0

	// CloudWidth is the unscaled cloud width in world units
	CloudWidth = 240.0
)

// Session
const (
	// StartingBalance is the display balance shown on the balance panel
	StartingBalance = "500"

	// CurrencySymbol prefixes balance values
	CurrencySymbol = "£"
)
