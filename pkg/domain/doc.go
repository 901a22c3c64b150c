// Package domain contains the vocabulary of the converter: measurement
// categories, their units, conversion requests and results, and the error
// kinds reported when a request names something outside that vocabulary.
// The types are free of transport and infrastructure concerns so the engine,
// the service and every front-end can share them.
package domain
