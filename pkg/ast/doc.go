// Package ast defines the tree produced by parsing SQL CREATE TABLE statements.
//
// The tree is made of plain Go values. Polymorphic nodes (statements, table
// entries, column constraints, table constraints and default values) are
// interfaces with an unexported marker method, so consumers handle them with
// type switches:
//
//	for _, entry := range table.Entries {
//		switch e := entry.(type) {
//		case *ast.Column:
//			fmt.Println(e.Name, e.Type, e.TypeArgs)
//		case *ast.TablePrimaryKey:
//			fmt.Println("primary key", e.Columns)
//		}
//	}
//
// Every node is created once by the parser and owned by its parent. Foreign
// keys reference other tables by name only; nothing is resolved.
//
// # Encoding
//
// All nodes encode to JSON and YAML. Tagged unions put their discriminator
// first (statementType, constraintType or type) and omit empty optional fields:
//
//	{"constraintType":"foreignKey","name":"fk1","referencedTable":"other_table","referencedColumn":"b"}
//	{"constraintType":"default","value":{"type":"string","value":"John ' Wick"}}
package ast
