// Package item decodes inventory blobs into slots and projects their
// attributes into the Item model used for valuation. It also scores how
// closely two items resemble each other.
package item
