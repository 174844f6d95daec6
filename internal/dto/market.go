package dto

// YahooChartResponse mirrors the chart API payload.
type YahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				Currency           string  `json:"currency"`
				FullExchangeName   string  `json:"fullExchangeName"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				FiftyTwoWeekHigh   float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow    float64 `json:"fiftyTwoWeekLow"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

// YahooQuoteSummaryResponse mirrors the quoteSummary payload for the
// summaryProfile and price modules.
type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"summaryProfile"`
			Price struct {
				MarketCap struct {
					Raw float64 `json:"raw"`
				} `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"quoteSummary"`
}

// YahooSearchResponse mirrors the free-text search payload.
type YahooSearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
		Sector    string `json:"sector"`
		Industry  string `json:"industry"`
	} `json:"quotes"`
}

type Candle struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// SymbolHistory is the provider-neutral view of one symbol's price series
// plus descriptive metadata.
type SymbolHistory struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Exchange         string   `json:"exchange"`
	Currency         string   `json:"currency"`
	MarketPrice      float64  `json:"market_price"`
	FiftyTwoWeekHigh float64  `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64  `json:"fifty_two_week_low"`
	Range            string   `json:"range"`
	Candles          []Candle `json:"candles"`
}

// SymbolSummary is the descriptive profile of one symbol, fetched
// separately from the price series.
type SymbolSummary struct {
	Symbol    string  `json:"symbol"`
	Sector    string  `json:"sector,omitempty"`
	Industry  string  `json:"industry,omitempty"`
	MarketCap float64 `json:"market_cap,omitempty"`
}

type SymbolMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
	Sector   string `json:"sector,omitempty"`
	Industry string `json:"industry,omitempty"`
}

type SymbolQuote struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Exchange         string   `json:"exchange"`
	Currency         string   `json:"currency"`
	Sector           string   `json:"sector,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	MarketCap        float64  `json:"market_cap,omitempty"`
	CurrentPrice     float64  `json:"current_price"`
	Change           float64  `json:"change"`
	ChangePercent    float64  `json:"change_percent"`
	DayHigh          float64  `json:"day_high"`
	DayLow           float64  `json:"day_low"`
	FiftyTwoWeekHigh float64  `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64  `json:"fifty_two_week_low"`
	Candles          []Candle `json:"candles"`
}

// QuoteView is the multi-symbol quote page: one entry per symbol that
// resolved, one warning per symbol that did not.
type QuoteView struct {
	Range    string        `json:"range"`
	Quotes   []SymbolQuote `json:"quotes"`
	Warnings []string      `json:"warnings,omitempty"`
}

type ComparisonSeries struct {
	Symbol     string    `json:"symbol"`
	Timestamps []int64   `json:"timestamps"`
	Normalized []float64 `json:"normalized"`
}

type SymbolPerformance struct {
	Symbol             string  `json:"symbol"`
	StartPrice         float64 `json:"start_price"`
	EndPrice           float64 `json:"end_price"`
	TotalReturnPercent float64 `json:"total_return_percent"`
}

// ComparisonView normalizes each close series to 100 at its first session
// so symbols with different price scales chart together.
type ComparisonView struct {
	Range       string              `json:"range"`
	Series      []ComparisonSeries  `json:"series"`
	Performance []SymbolPerformance `json:"performance"`
	Warnings    []string            `json:"warnings,omitempty"`
}

type SearchView struct {
	Query    string        `json:"query"`
	Matches  []SymbolMatch `json:"matches"`
	Warnings []string      `json:"warnings,omitempty"`
}
