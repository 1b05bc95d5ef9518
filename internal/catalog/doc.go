// Package catalog derives the browsable views of a deal catalog: search
// filtering, column sorting, pagination, the featured strip and the popular
// games ranking. Every function here is pure; ViewState ties them together.
package catalog
