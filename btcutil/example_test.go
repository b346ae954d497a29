package btcutil_test

import (
	"fmt"
	"math"

	"github.com/chaintope/tapyrusd/btcutil"
)

func ExampleAmount() {

	a := btcutil.Amount(0)
	fmt.Println("Zero tapyrus:", a)

	a = btcutil.Amount(1e8)
	fmt.Println("100,000,000 tapyrus:", a)

	a = btcutil.Amount(1e5)
	fmt.Println("100,000 tapyrus:", a)
	// Output:
	// Zero tapyrus: 0 TPC
	// 100,000,000 tapyrus: 1 TPC
	// 100,000 tapyrus: 0.001 TPC
}

func ExampleNewAmount() {
	amountOne, err := btcutil.NewAmount(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountOne) //Output 1

	amountFraction, err := btcutil.NewAmount(0.01234567)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountFraction) //Output 2

	amountZero, err := btcutil.NewAmount(0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountZero) //Output 3

	amountNaN, err := btcutil.NewAmount(math.NaN())
	if err != nil {
		fmt.Println(err.Message())
		return
	}
	fmt.Println(amountNaN) //Output 4

	// Output: 1 TPC
	// 0.01234567 TPC
	// 0 TPC
	// invalid tapyrus amount
}

func formatOrDie(a btcutil.Amount, to string) string {
	x, e := a.Format(to)
	if e != nil {
		panic(fmt.Sprintf("formatOrDie(%v) %v", to, e))
	}
	return x
}

func ExampleAmount_unitConversions() {
	amount := btcutil.Amount(44433322211100)

	fmt.Println("tapyrus to kTPC:", formatOrDie(amount, "kTPC"))
	fmt.Println("tapyrus to TPC:", amount)
	fmt.Println("tapyrus to MilliTPC:", formatOrDie(amount, "mTPC"))
	fmt.Println("tapyrus to MicroTPC:", formatOrDie(amount, "uTPC"))
	fmt.Println("tapyrus to tapyrus:", formatOrDie(amount, "tapyrus"))

	// Output:
	// tapyrus to kTPC: 444.333222111 kTPC
	// tapyrus to TPC: 444333.222111 TPC
	// tapyrus to MilliTPC: 444333222.111 mTPC
	// tapyrus to MicroTPC: 444333222111 μTPC
	// tapyrus to tapyrus: 44433322211100 tapyrus
}

func ExampleAmount_unitConversions1() {
	amount := btcutil.Amount(44433322211133)

	fmt.Println("tapyrus to kTPC:", formatOrDie(amount, "kTPC"))
	fmt.Println("tapyrus to TPC:", amount)
	fmt.Println("tapyrus to MilliTPC:", formatOrDie(amount, "mTPC"))
	fmt.Println("tapyrus to MicroTPC:", formatOrDie(amount, "uTPC"))
	fmt.Println("tapyrus to tapyrus:", formatOrDie(amount, "tapyrus"))

	// Output:
	// tapyrus to kTPC: 444.33322211133 kTPC
	// tapyrus to TPC: 444333.22211133 TPC
	// tapyrus to MilliTPC: 444333222.11133 mTPC
	// tapyrus to MicroTPC: 444333222111.33 μTPC
	// tapyrus to tapyrus: 44433322211133 tapyrus
}
