// Package utils provides small helpers shared by the command line tools.
package utils
