// File: chain.go
// Title: Validator Chain Implementation
// Description: Composable validator chains. A chain runs its validators in
//              order and either collects every failure or stops at the
//              first one.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-18 v0.2.0: Generic chain, conditional and parallel validators removed

package validation

import (
	"fmt"
)

// Chain is a sequence of validators for the same value type
type Chain[T any] struct {
	rules            []Rule[T]
	name             string
	stopOnFirstError bool
}

// NewChain creates a new chain with an optional name
func NewChain[T any](name ...string) *Chain[T] {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &Chain[T]{name: chainName}
}

// Add adds a validator to the chain
func (c *Chain[T]) Add(rule Rule[T]) *Chain[T] {
	c.rules = append(c.rules, rule)
	return c
}

// AddFunc adds a validator function to the chain
func (c *Chain[T]) AddFunc(fn func(T) Result) *Chain[T] {
	return c.Add(RuleFunc[T](fn))
}

// StopOnFirstError makes the chain stop after the first failing validator
func (c *Chain[T]) StopOnFirstError(stop bool) *Chain[T] {
	c.stopOnFirstError = stop
	return c
}

// Validate runs all validators and combines their results
func (c *Chain[T]) Validate(value T) Result {
	results := make([]Result, 0, len(c.rules))
	for _, rule := range c.rules {
		result := rule.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return Combine(results...)
}

// Length returns the number of validators in the chain
func (c *Chain[T]) Length() int {
	return len(c.rules)
}

// Name returns the chain name
func (c *Chain[T]) Name() string {
	return c.name
}

// String returns a string representation of the chain
func (c *Chain[T]) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("Chain{name: %s, rules: %d, stopOnFirstError: %v}",
		name, len(c.rules), c.stopOnFirstError)
}
