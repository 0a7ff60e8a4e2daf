// Package precommit models a .pre-commit-config.yaml document and writes it
// with a sparse, order-preserving encoder: fields without a value are left
// out at every level and present fields keep their declared order.
package precommit
