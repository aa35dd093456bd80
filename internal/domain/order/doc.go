// Package order assembles the synthetic order stream.
//
// The Assembler walks the simulation window one day at a time. For every
// store in roster order it estimates the day's visits, spreads them over the
// operating hours and, per visit, draws a customer from the visit pool, a
// cashier, a basket size, its quantity split and categories, then a product
// per category. Each visit's lines are priced and handed to a Sink before the
// next visit starts, so memory stays flat regardless of the window length.
package order
