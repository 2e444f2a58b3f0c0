// File: validator.go
// Title: Argument Validator
// Description: Decides whether a request satisfies its descriptions. The
//              default validator is a chain of rules; every failing rule
//              contributes an error that is recorded on the request.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package validator

import (
	"fmt"

	"github.com/msto63/gemscli/foundation/cli/description"
	"github.com/msto63/gemscli/foundation/cli/request"
	gemslog "github.com/msto63/gemscli/foundation/core/log"
	"github.com/msto63/gemscli/foundation/core/validation"
)

// Validator checks a request against descriptions and records the outcome
type Validator interface {
	Validate(descs []description.Description, req *request.Request) bool
}

// Input is the value the rules inspect
type Input struct {
	Descriptions []description.Description
	Request      *request.Request
}

// Rule is a single check over an Input
type Rule = validation.Rule[Input]

// Options configures the default validator
type Options struct {
	Logger *gemslog.Logger

	// StopOnFirstError reports only the first failing rule
	StopOnFirstError bool
}

// RuleValidator runs a chain of rules
type RuleValidator struct {
	chain  *validation.Chain[Input]
	logger *gemslog.Logger
}

// New creates a validator with the default rules
func New(opts Options) *RuleValidator {
	if opts.Logger == nil {
		opts.Logger = gemslog.GetDefault()
	}

	chain := validation.NewChain[Input]("arguments").
		AddFunc(requiredPresent).
		AddFunc(singleOccurrence).
		AddFunc(typedValues).
		AddFunc(flagsWithoutValue).
		AddFunc(noUnknown).
		AddFunc(noSurplus).
		StopOnFirstError(opts.StopOnFirstError)

	return &RuleValidator{
		chain:  chain,
		logger: opts.Logger.WithField("component", "argument-validator"),
	}
}

// Default creates a validator with default options
func Default() *RuleValidator {
	return New(Options{})
}

// AddRule appends a custom rule after the default rules
func (v *RuleValidator) AddRule(rule Rule) *RuleValidator {
	v.chain.Add(rule)
	return v
}

// Validate implements Validator
func (v *RuleValidator) Validate(descs []description.Description, req *request.Request) bool {
	if req == nil {
		return false
	}

	result := v.chain.Validate(Input{Descriptions: descs, Request: req})
	req.Record(result)

	logger := v.logger.WithRequestID(req.ID())
	if !result.Valid {
		logger.Warn("argument validation failed", gemslog.Fields{
			"failures": result.ErrorMessages(),
		})
		return false
	}

	logger.Debug("arguments validated", gemslog.Fields{
		"arguments": len(req.Arguments()),
	})
	return true
}

func requiredPresent(in Input) validation.Result {
	result := validation.NewResult()
	for _, d := range in.Descriptions {
		if d.Scope == description.Required && !in.Request.Contains(d.Name) {
			result.AddFieldError(validation.CodeRequired, d.Name,
				fmt.Sprintf("missing required parameter %q", d.Name), nil)
		}
	}
	return result
}

func singleOccurrence(in Input) validation.Result {
	result := validation.NewResult()
	for _, d := range in.Descriptions {
		if d.Multiplicity == description.Once {
			if n := in.Request.Count(d.Name); n > 1 {
				result.AddFieldError(validation.CodeMultiplicity, d.Name,
					fmt.Sprintf("parameter %q given %d times", d.Name, n), n)
			}
		}
	}
	return result
}

func typedValues(in Input) validation.Result {
	result := validation.NewResult()
	for _, d := range in.Descriptions {
		if d.IsFlag() {
			continue
		}
		for _, arg := range in.Request.All(d.Name) {
			if !d.Type.Valid(arg.Value) {
				result.AddFieldError(validation.CodeType, d.Name,
					fmt.Sprintf("parameter %q expects %s, got %q", d.Name, d.TypeName(), arg.Value), arg.Value)
			}
		}
	}
	return result
}

func flagsWithoutValue(in Input) validation.Result {
	result := validation.NewResult()
	for _, d := range in.Descriptions {
		if !d.IsFlag() {
			continue
		}
		for _, arg := range in.Request.All(d.Name) {
			if arg.Value != "" {
				result.AddFieldError(validation.CodeFlagValue, d.Name,
					fmt.Sprintf("flag %q takes no value, got %q", d.Name, arg.Value), arg.Value)
			}
		}
	}
	return result
}

func noUnknown(in Input) validation.Result {
	result := validation.NewResult()
	for _, arg := range in.Request.Unknown() {
		result.AddFieldError(validation.CodeUnknown, arg.Name,
			fmt.Sprintf("unknown parameter %q", arg.Name), arg.Value)
	}
	return result
}

func noSurplus(in Input) validation.Result {
	result := validation.NewResult()
	for _, arg := range in.Request.Surplus() {
		result.AddFieldError(validation.CodeSurplus, "",
			fmt.Sprintf("unexpected argument %q", arg.Value), arg.Value)
	}
	return result
}
