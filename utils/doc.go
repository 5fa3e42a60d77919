// Package utils provides small input helpers shared by examples and
// tests: line-wise file reading and random unsigned vectors.
package utils
