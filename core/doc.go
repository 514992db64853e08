// Package core defines the identifier types shared by every provgraph package.
package core
