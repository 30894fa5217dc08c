//-----------------------------------------------------------------------------
/*

Pricing Calculator

A deterministic, side-effect-free function from a material descriptor,
quantity, gauge, length, bend count, and cut count to a QuoteBreakdown.
Downstream consumer of the analyzer's AnalysisResult: the analyzer
reports length in millimeters, bends, and cuts; a caller converts length
to inches and supplies a gauge/material/quantity before calling Quote.

*/
//-----------------------------------------------------------------------------

package pricing

import "math"

//-----------------------------------------------------------------------------

// Material is the pricing input's material descriptor.
type Material struct {
	ID         string
	Name       string
	PricePerLb float64
}

// Gauge weights, lb per inch of tube length.
var gaugeWeightPerInch = map[string]float64{
	"16AWG": 0.15,
	"14AWG": 0.19,
	"12AWG": 0.25,
	"10AWG": 0.32,
	"8AWG":  0.41,
}

const defaultGauge = "14AWG"

const (
	bendingRatePerBend = 15.00
	cuttingRatePerCut  = 8.00
	setupCost          = 75.00
	laborRatePerHour   = 65.00
	baseTimeHours      = 0.25
	timePerBendHours   = 0.15
	timePerCutHours    = 0.08
	taxRate            = 0.08875
)

//-----------------------------------------------------------------------------

// QuoteBreakdown is the pricing contract's output. All monetary fields
// are Cents; Float64 dollar accessors exist on Cents for display.
type QuoteBreakdown struct {
	Material Material
	Quantity int
	Gauge    string

	MaterialWeightLb float64
	LaborHours       float64

	MaterialCost Cents
	BendingCost  Cents
	CuttingCost  Cents
	LaborCost    Cents
	SetupCost    Cents

	Subtotal         Cents
	DiscountRate     float64
	DiscountedAmount Cents
	Tax              Cents
	Total            Cents
	PerPart          Cents
}

//-----------------------------------------------------------------------------

// Quote computes a full QuoteBreakdown for `quantity` identical parts of
// the given gauge, material, length (inches), bend count, and cut count.
func Quote(material Material, quantity int, gauge string, lengthIn float64, bends, cuts int) QuoteBreakdown {
	weightPerIn, ok := gaugeWeightPerInch[gauge]
	if !ok {
		gauge = defaultGauge
		weightPerIn = gaugeWeightPerInch[defaultGauge]
	}

	materialWeight := lengthIn * weightPerIn
	materialCostPerPart := FromFloat(materialWeight * material.PricePerLb)
	bendingCostPerPart := FromFloat(float64(bends) * bendingRatePerBend)
	cuttingCostPerPart := FromFloat(float64(cuts) * cuttingRatePerCut)

	q := float64(quantity)
	materialCost := materialCostPerPart.Mul(q)
	bendingCost := bendingCostPerPart.Mul(q)
	cuttingCost := cuttingCostPerPart.Mul(q)

	laborHours := q * (baseTimeHours + float64(bends)*timePerBendHours + float64(cuts)*timePerCutHours)
	laborCost := FromFloat(laborHours * laborRatePerHour)

	setup := FromFloat(setupCost)

	subtotal := materialCost.Add(bendingCost).Add(cuttingCost).Add(laborCost).Add(setup)

	discountRate := quantityDiscount(quantity)
	discount := subtotal.Mul(discountRate)
	discounted := subtotal.Sub(discount)

	tax := discounted.Mul(taxRate)
	total := discounted.Add(tax)

	perPart := Cents(0)
	if quantity > 0 {
		perPart = Cents(math.Round(float64(total) / q))
	}

	return QuoteBreakdown{
		Material:          material,
		Quantity:          quantity,
		Gauge:             gauge,
		MaterialWeightLb:  materialWeight,
		LaborHours:        laborHours,
		MaterialCost:      materialCost,
		BendingCost:       bendingCost,
		CuttingCost:       cuttingCost,
		LaborCost:         laborCost,
		SetupCost:        setup,
		Subtotal:         subtotal,
		DiscountRate:     discountRate,
		DiscountedAmount: discounted,
		Tax:              tax,
		Total:            total,
		PerPart:          perPart,
	}
}

//-----------------------------------------------------------------------------

// quantityDiscount applies the fixed quantity-discount tiers.
func quantityDiscount(quantity int) float64 {
	switch {
	case quantity >= 101:
		return 0.15
	case quantity >= 51:
		return 0.10
	case quantity >= 11:
		return 0.05
	default:
		return 0
	}
}
