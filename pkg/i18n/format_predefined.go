package i18n

// FormatEn returns the English storefront format: "€1,234.50",
// "Tuesday, October 20, 2026".
func FormatEn() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatFr returns the French storefront format: "1 234,50 €",
// "mardi 20 octobre 2026".
func FormatFr() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencyPosition(CurrencyAfter),
		WithDateFormat("02/01/2006"),
		WithCalendarNames(
			[7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			[12]string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
		),
		WithDayFirst(),
	)
}
