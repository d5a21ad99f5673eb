// Package currency инкапсулирует получение курсов валют у внешнего API и их
// кэширование. Кэш - явный объект с TTL, а не глобальное состояние модуля.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RatesResponse - ответ внешнего API: базовая валюта и курсы к ней.
type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type RatesClient interface {
	GetRates(ctx context.Context, base string) (*RatesResponse, error)
}

// HTTPClient - реализация RatesClient поверх HTTP (exchangerate-api и
// совместимые: GET {baseURL}/{base}).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// GetRates запрашивает свежие курсы для базовой валюты base. При статусе
// отличном от http.StatusOK возвращает *StatusCodeError.
func (c HTTPClient) GetRates(ctx context.Context, base string) (resp *RatesResponse, err error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "create rates request")
	}

	httpResp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, errors.Wrap(doErr, "do rates request")
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close rates response body")
		}
	}()

	if httpResp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(httpResp.StatusCode)
	}

	body, readErr := io.ReadAll(httpResp.Body)
	if readErr != nil {
		return nil, errors.Wrap(readErr, "read rates response")
	}

	if jsonErr := json.Unmarshal(body, &resp); jsonErr != nil {
		return nil, errors.Wrap(jsonErr, "parse rates response")
	}
	return resp, nil
}
