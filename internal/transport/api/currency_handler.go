package api

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/fsdevblog/groupsplit/internal/currency"
	"github.com/gin-gonic/gin"
)

const defaultBaseCurrency = "USD"

type CurrencyHandler struct {
	currencyService CurrencyServicer
}

func NewCurrencyHandler(currencyService CurrencyServicer) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
	}
}

// Rates GET RouteGroup + CurrencyRatesRoute?base=XXX. Курсы к базовой валюте,
// по умолчанию USD.
func (h *CurrencyHandler) Rates(c *gin.Context) {
	base := strings.ToUpper(c.DefaultQuery("base", defaultBaseCurrency))

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rates, err := h.currencyService.Rates(ctx, base)
	if err != nil {
		if errors.Is(err, currency.ErrUnknownCurrency) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown base currency"})
			return
		}
		_ = c.AbortWithError(http.StatusBadGateway, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	res := make(map[string]float64, len(rates))
	for code, rate := range rates {
		res[code] = rate.InexactFloat64()
	}
	c.JSON(http.StatusOK, gin.H{"base": base, "rates": res})
}

// Supported GET RouteGroup + CurrencySupportedRoute. Отсортированный список
// кодов валют, известных провайдеру.
func (h *CurrencyHandler) Supported(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rates, err := h.currencyService.Rates(ctx, defaultBaseCurrency)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	c.JSON(http.StatusOK, gin.H{"currencies": codes})
}
