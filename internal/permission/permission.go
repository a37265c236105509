// Package permission decides whether a role may read or write a board
// category. Decisions come from a materialized lookup table covering
// every (role, category, operation) combination, so the matrix stays
// exhaustive and testable as data rather than branching logic.
package permission

import (
	"fmt"

	"community-board-api/internal/domain"
	"community-board-api/internal/response"
)

// Operation is the kind of access being checked
type Operation string

// Operation constants
const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
)

// capabilities holds the two independent permissions a role carries.
// ADMIN is a superset of both; COMPANY and GENERAL are incomparable,
// so an ordinal role rank cannot express this matrix.
type capabilities struct {
	canWriteNotice           bool
	canAccessCompanyCategory bool
}

var roleCapabilities = map[domain.Role]capabilities{
	domain.RoleGeneral: {canWriteNotice: false, canAccessCompanyCategory: false},
	domain.RoleCompany: {canWriteNotice: false, canAccessCompanyCategory: true},
	domain.RoleAdmin:   {canWriteNotice: true, canAccessCompanyCategory: true},
}

// decisionKey addresses one cell of the permission matrix
type decisionKey struct {
	Role      domain.Role
	BoardType domain.BoardType
	Op        Operation
}

// decisionTable materializes the full matrix:
//
//	NOTICE   write ADMIN only          read everyone
//	COMPANY  write ADMIN, COMPANY      read ADMIN, COMPANY
//	FREE     write everyone            read everyone
//	QNA      write everyone            read everyone
var decisionTable = buildDecisionTable()

func buildDecisionTable() map[decisionKey]bool {
	table := make(map[decisionKey]bool, len(roleCapabilities)*len(domain.AllBoardTypes())*2)
	for role, caps := range roleCapabilities {
		for _, boardType := range domain.AllBoardTypes() {
			table[decisionKey{role, boardType, OpWrite}] = caps.allowsWrite(boardType)
			table[decisionKey{role, boardType, OpRead}] = caps.allowsRead(boardType)
		}
	}
	return table
}

func (c capabilities) allowsWrite(boardType domain.BoardType) bool {
	switch boardType {
	case domain.BoardTypeNotice:
		return c.canWriteNotice
	case domain.BoardTypeCompany:
		return c.canAccessCompanyCategory
	default:
		return true
	}
}

func (c capabilities) allowsRead(boardType domain.BoardType) bool {
	if boardType == domain.BoardTypeCompany {
		return c.canAccessCompanyCategory
	}
	return true
}

// Allowed returns the table decision for one combination. Unknown
// roles or board types are denied.
func Allowed(role domain.Role, boardType domain.BoardType, op Operation) bool {
	return decisionTable[decisionKey{role, boardType, op}]
}

// CheckWrite returns nil when the role may create or modify posts in
// the category, and a FORBIDDEN error otherwise
func CheckWrite(role domain.Role, boardType domain.BoardType) error {
	if Allowed(role, boardType, OpWrite) {
		return nil
	}
	return response.NewForbiddenError(
		"No write permission for this board type",
		fmt.Sprintf("role=%s boardType=%s op=%s", role, boardType, OpWrite),
	)
}

// CheckRead returns nil when the role may read the category, and a
// FORBIDDEN error otherwise
func CheckRead(role domain.Role, boardType domain.BoardType) error {
	if Allowed(role, boardType, OpRead) {
		return nil
	}
	return response.NewForbiddenError(
		"No read permission for this board type",
		fmt.Sprintf("role=%s boardType=%s op=%s", role, boardType, OpRead),
	)
}

// AllowedReadCategories returns the categories the role may read, in
// display order. Used to build the filter for multi-category listings.
func AllowedReadCategories(role domain.Role) []domain.BoardType {
	allowed := make([]domain.BoardType, 0, 4)
	for _, boardType := range domain.AllBoardTypes() {
		if Allowed(role, boardType, OpRead) {
			allowed = append(allowed, boardType)
		}
	}
	return allowed
}
