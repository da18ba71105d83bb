package mocks

//go:generate go tool counterfeiter -generate
//counterfeiter:generate -o=warehouse.mock.go ../destination Warehouse
