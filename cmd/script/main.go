package main

import (
	"courselab/cmd"
	"courselab/internal"
	"flag"
	"log"

	_ "github.com/lib/pq"
)

func main() {
	seedCsvPath := flag.String("seed-csv", "", "seed currency rates from a csv file instead of the live feed")
	flag.Parse()

	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	if *seedCsvPath != "" {
		err = internal.SeedCurrencyRatesFromCsv(*seedCsvPath, handler.CurrencyRateRepository)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err = internal.UpdateCurrencyRates(handler.CurrencyRateRepository)
	if err != nil {
		log.Fatal(err)
	}
}
