// Package soap talks to the dataaccess.com NumberConversion web service,
// which converts an integer into its English word representation.
package soap

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tiaguinho/gosoap"

	"invrecon/internal/config"
	"invrecon/internal/port"
)

type numberConversionClient struct {
	client *gosoap.Client
}

// numberToWordsResponse mirrors the NumberToWordsResponse SOAP body.
type numberToWordsResponse struct {
	NumberToWordsResult string `xml:"NumberToWordsResult"`
}

// NewNumberConversionClient creates a NumberConverter backed by the
// NumberConversion SOAP service described by the configured WSDL.
func NewNumberConversionClient(cfg *config.SOAPConfig) (port.NumberConverter, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	client, err := gosoap.SoapClient(cfg.WSDL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("creating soap client: %w", err)
	}
	return &numberConversionClient{client: client}, nil
}

func (c *numberConversionClient) NumberToWords(ctx context.Context, n int64) (string, error) {
	res, err := c.client.Call("NumberToWords", gosoap.Params{
		"ubiNum": strconv.FormatInt(n, 10),
	})
	if err != nil {
		return "", fmt.Errorf("calling NumberToWords: %w", err)
	}

	var out numberToWordsResponse
	if err := res.Unmarshal(&out); err != nil {
		return "", fmt.Errorf("decoding NumberToWords response: %w", err)
	}
	return out.NumberToWordsResult, nil
}
