package main

import (
	"fmt"

	"example.com/samplemod/calc"
)

func main() {
	fmt.Println(calc.Abs(-3), calc.Sign(2))
}
