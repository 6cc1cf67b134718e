package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/solarcast/docs.go`.
//
// @title           solarcast API
// @version         1.0
// @description     Daily global and diffuse solar radiation forecasts with uncertainty bounds.
//
// @contact.name   solarcast maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
