// Package normalisers contains text normalisation adapters.
//
// Each subpackage implements driven.Normaliser for one cleaning
// strategy. The pipeline currently uses the letters+whitespace
// normaliser in normalisers/text.
package normalisers
