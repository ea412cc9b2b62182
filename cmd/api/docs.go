// @title Vedic Chart API
// @version 1.0
// @description Sidereal natal chart computation and place geocoding over HTTP. Charts are computed with the Lahiri ayanamsha and Placidus houses.
// @BasePath /
package main
