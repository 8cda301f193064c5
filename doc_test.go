package money_test

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	money "github.com/govalues/scaledmoney"
)

func TaxAmount(priceAfterTax money.Amount, taxRate decimal.Decimal) (money.Amount, money.Amount, error) {
	// Price
	taxRate, err := taxRate.Add(decimal.One)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	priceBeforeTax, err := priceAfterTax.Quo(taxRate)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	priceBeforeTax = priceBeforeTax.RoundToCurr()

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustParseAmount("USD", "10")
	vatRate := decimal.MustParse("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %-6k         = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, an invoice line is priced with a quantity and a discount
// that are kept exact until the total is settled in the currency's scale.
func Example_invoiceLine() {
	unitPrice := money.MustNewScaled("BRL", 29999, 2)

	gross, err := unitPrice.Mul("1.5")
	if err != nil {
		panic(err)
	}
	discount, err := gross.Mul("0.1")
	if err != nil {
		panic(err)
	}
	net, err := gross.Sub(discount)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Gross    = %v\n", gross)
	fmt.Printf("Discount = %v\n", discount)
	fmt.Printf("Net      = %v\n", net)
	fmt.Printf("Settled  = %v\n", net.RoundToCurr())

	// Output:
	// Gross    = BRL 449.985
	// Discount = BRL 44.9985
	// Net      = BRL 404.9865
	// Settled  = BRL 404.99
}

func ExampleNewScaled() {
	fmt.Println(money.NewScaled("BRL", 29999, 2))
	fmt.Println(money.NewScaled("JPY", 0, 0))
	fmt.Println(money.NewScaled("BRL", -1, 2))
	// Output:
	// BRL 299.99 <nil>
	// JPY 0 <nil>
	// XXX 0 creating BRL money: invalid amount: -1 is negative
}

func ExampleNewScaledDefault() {
	fmt.Println(money.NewScaledDefault("USD", 1500))
	// Output: USD 15.00 <nil>
}

func ExampleMustNewScaled() {
	fmt.Println(money.MustNewScaled("OMR", 5, 3))
	// Output: OMR 0.005
}

func ExampleParseScaled() {
	fmt.Println(money.ParseScaled("BRL", "299,99", ","))
	fmt.Println(money.ParseScaled("USD", "-0.050", "."))
	// Output:
	// BRL 299.99 <nil>
	// USD -0.050 <nil>
}

func ExampleScaledMoney_Add() {
	a := money.MustNewScaled("BRL", 500, 2)
	b := money.MustNewScaled("BRL", 5000, 3)
	fmt.Println(a.Add(b))
	// Output: BRL 10.000 <nil>
}

func ExampleScaledMoney_Sub() {
	a := money.MustNewScaled("BRL", 1000, 2)
	b := money.MustNewScaled("BRL", 2505, 3)
	fmt.Println(a.Sub(b))
	fmt.Println(b.Sub(a))
	// Output:
	// BRL 7.495 <nil>
	// BRL -7.495 <nil>
}

func ExampleScaledMoney_Mul() {
	a := money.MustNewScaled("BRL", 2000, 2)
	b := money.MustNewScaled("BRL", 29999, 2)
	fmt.Println(a.Mul("0.5"))
	fmt.Println(b.Mul("1.5"))
	fmt.Println(b.Mul("1,5"))
	// Output:
	// BRL 10.00 <nil>
	// BRL 449.985 <nil>
	// XXX 0 computing [BRL 299.99 * "1,5"]: invalid multiplier: unexpected character ',' in "1,5"
}

func ExampleScaledMoney_Round() {
	m := money.MustNewScaled("BRL", 449985, 3)
	fmt.Println(m.Round(2))
	fmt.Println(m.Round(1))
	fmt.Println(m.Round(0))
	// Output:
	// BRL 449.98
	// BRL 450.0
	// BRL 450
}

func ExampleScaledMoney_Trim() {
	m := money.MustNewScaled("USD", 150000, 4)
	fmt.Println(m.Trim(0))
	fmt.Println(m.Trim(3))
	// Output:
	// USD 15
	// USD 15.000
}

func ExampleScaledMoney_Text() {
	fmt.Println(money.MustNewScaled("BRL", 29999, 2).Text(","))
	fmt.Println(money.MustNewScaled("BRL", 5, 2).Text("."))
	fmt.Println(money.MustNewScaled("JPY", 1500, 0).Text("."))
	// Output:
	// 299,99
	// 0.05
	// 1500
}

func ExampleScaledMoney_Cmp() {
	a := money.MustNewScaled("USD", 10, 1)
	b := money.MustNewScaled("USD", 100, 2)
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Equal(b))
	// Output:
	// 0 <nil>
	// false
}

func ExampleScaledMoney_Amount() {
	m := money.MustNewScaled("USD", 449985, 3)
	fmt.Println(m.Amount())
	// Output: USD 449.985 <nil>
}

func ExampleMustParseAmount() {
	fmt.Println(money.MustParseAmount("USD", "-1.23"))
	// Output: USD -1.23
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("USD", "5.75")
	b := money.MustParseAmount("USD", "3.30")
	fmt.Println(a.Add(b))
	// Output: USD 9.05 <nil>
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("USD", "1.01")
	fmt.Println(a.Split(3))
	// Output: [USD 0.34 USD 0.34 USD 0.33] <nil>
}

func ExampleAmount_RoundToCurr() {
	a := money.MustParseAmount("USD", "1.015")
	fmt.Println(a.RoundToCurr())
	// Output: USD 1.02
}

func ExampleExchangeRate_ConvScaled() {
	r := money.MustParseExchRate("USD", "BRL", "5.1234")
	m := money.MustNewScaled("USD", 1000, 2)
	fmt.Println(r.ConvScaled(m))
	n := money.MustNewScaled("USD", 1, 2)
	fmt.Println(r.ConvScaled(n))
	// Output:
	// BRL 51.234 <nil>
	// BRL 0.051234 <nil>
}

func ExampleExchangeRate_Conv() {
	r := money.MustParseExchRate("USD", "EUR", "0.9")
	a := money.MustParseAmount("USD", "10")
	fmt.Println(r.Conv(a))
	// Output: EUR 9.00 <nil>
}

func ExampleExchangeRate_Inv() {
	r := money.MustParseExchRate("EUR", "USD", "1.25")
	q, err := r.Inv()
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Base(), q.Quote())
	fmt.Println(q.Conv(money.MustParseAmount("USD", "10")))
	// Output:
	// USD EUR
	// EUR 8.00 <nil>
}

func ExampleRateTable() {
	rates := money.NewRateTable(
		money.MustParseExchRate("USD", "BRL", "5.10"),
	)
	fmt.Println(rates.Rate(context.Background(), money.USD, money.BRL))
	fmt.Println(rates.Rate(context.Background(), money.BRL, money.BRL))
	// Output:
	// USD/BRL 5.1000 <nil>
	// BRL/BRL 1.0000 <nil>
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("brl"))
	fmt.Println(money.ParseCurr("986"))
	// Output:
	// BRL <nil>
	// BRL <nil>
}

func ExampleCurrency_Scale() {
	fmt.Println(money.JPY.Scale())
	fmt.Println(money.USD.Scale())
	fmt.Println(money.OMR.Scale())
	// Output:
	// 0
	// 2
	// 3
}
