// Package flags provides pflag values shared by command builders.
package flags
