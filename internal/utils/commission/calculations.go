// Package commission holds the pure commission math shared by services.
package commission

import (
	"fmt"

	"github.com/salonsync/salon_management_app/internal/apperrors"
	"github.com/salonsync/salon_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the currency precision used for all money computations.
const moneyPlaces = 2

// RoundMoney rounds an amount to currency precision using half-up rounding.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(moneyPlaces)
}

// Compute derives the commission owed for a sale: salePrice times the
// professional's rate for the sale type, rounded to currency precision.
// The rate is the professional's rate at this moment; the caller freezes the
// result on the sale so later rate edits never touch it.
func Compute(salePrice decimal.Decimal, professional domain.Professional, saleType domain.SaleType) (decimal.Decimal, error) {
	if salePrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("sale price must not be negative: %w", apperrors.ErrValidation)
	}
	if saleType != domain.SaleTypeService && saleType != domain.SaleTypeProduct {
		return decimal.Zero, fmt.Errorf("unknown sale type '%s': %w", saleType, apperrors.ErrValidation)
	}

	rate := professional.RateForSaleType(saleType)
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("commission rate must not be negative: %w", apperrors.ErrValidation)
	}

	return RoundMoney(salePrice.Mul(rate)), nil
}

// ValidateRate checks that a commission rate is a fraction in [0, 1].
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("commission rate must be a fraction between 0 and 1: %w", apperrors.ErrValidation)
	}
	return nil
}
