package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	sqlkit "github.com/ritamzico/sqlkit"
	"github.com/ritamzico/sqlkit/internal/format"
)

var rootCmd = &cobra.Command{
	Use:   "sqlkit",
	Short: "Dialect-aware SQL parsing, formatting, and CTE tooling",
	Long: `sqlkit parses, formats, and analyzes SQL text without ever touching a
database: format rewrites a statement under configurable style options,
parse prints its structure, cte inspects/rewrites WITH clauses, and diff
compares two CREATE TABLE/INDEX corpora.

Run "sqlkit repl" for an interactive loop over these same operations.`,
}

func main() {
	rootCmd.AddCommand(formatCmd, parseCmd, cteCmd, diffCmd, replCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readArgOrStdin(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var (
	fmtKeywordCase string
	fmtIndentSize  int
)

var formatCmd = &cobra.Command{
	Use:   "format [sql]",
	Short: "Reformat a SQL statement under configurable style options",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readArgOrStdin(args)
		if err != nil {
			return err
		}
		stmt, err := sqlkit.Parse(src)
		if err != nil {
			return err
		}
		opts := sqlkit.DefaultFormatOptions()
		opts.IndentSize = fmtIndentSize
		kc, err := parseKeywordCase(fmtKeywordCase)
		if err != nil {
			return err
		}
		opts.KeywordCase = kc
		out, err := sqlkit.Format(stmt, opts)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [sql]",
	Short: "Parse a SQL statement and print its AST as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readArgOrStdin(args)
		if err != nil {
			return err
		}
		stmt, err := sqlkit.Parse(src)
		if err != nil {
			return err
		}
		return printJSON(stmt)
	},
}

var cteCmd = &cobra.Command{
	Use:   "cte",
	Short: "Inspect or rewrite a query's WITH clauses",
}

var cteCollectCmd = &cobra.Command{
	Use:   "collect [sql]",
	Short: "List every CTE with its dependency edges",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readArgOrStdin(args)
		if err != nil {
			return err
		}
		q, err := sqlkit.ParseSelect(src)
		if err != nil {
			return err
		}
		infos, err := sqlkit.CollectCTEs(q)
		if err != nil {
			return err
		}
		return printJSON(infos)
	},
}

var cteDecomposeCmd = &cobra.Command{
	Use:   "decompose [sql]",
	Short: "Detach every CTE into a self-contained query",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readArgOrStdin(args)
		if err != nil {
			return err
		}
		q, err := sqlkit.ParseSelect(src)
		if err != nil {
			return err
		}
		infos, err := sqlkit.DecomposeCTEs(q)
		if err != nil {
			return err
		}
		for _, info := range infos {
			out, err := sqlkit.FormatQuery(info.Query, sqlkit.DefaultFormatOptions())
			if err != nil {
				return err
			}
			fmt.Printf("-- %s\n%s\n\n", info.Name, out)
		}
		return nil
	},
}

var cteExtractName string

var cteExtractCmd = &cobra.Command{
	Use:   "extract [sql]",
	Short: "Build a standalone runnable snippet for one CTE",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readArgOrStdin(args)
		if err != nil {
			return err
		}
		q, err := sqlkit.ParseSelect(src)
		if err != nil {
			return err
		}
		extracted, err := sqlkit.ExtractCTE(q, cteExtractName)
		if err != nil {
			return err
		}
		return printJSON(extracted)
	},
}

func init() {
	cteExtractCmd.Flags().StringVar(&cteExtractName, "name", "", "CTE name to extract")
	cteExtractCmd.MarkFlagRequired("name")
	cteCmd.AddCommand(cteCollectCmd, cteDecomposeCmd, cteExtractCmd)
}

var (
	diffDropColumns     bool
	diffDropTables      bool
	diffDropConstraints bool
	diffCheckNames      bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <current.sql> <expected.sql>",
	Short: "Generate the DDL statements that transform current into expected",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		expected, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		stmts, err := sqlkit.GenerateDiff(string(current), string(expected), sqlkit.DiffOptions{
			DropColumns:          diffDropColumns,
			DropTables:           diffDropTables,
			DropConstraints:      diffDropConstraints,
			CheckConstraintNames: diffCheckNames,
		})
		if err != nil {
			return err
		}
		for _, s := range stmts {
			fmt.Println(s + ";")
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffDropColumns, "drop-columns", false, "emit DROP COLUMN statements")
	diffCmd.Flags().BoolVar(&diffDropTables, "drop-tables", false, "emit DROP TABLE statements")
	diffCmd.Flags().BoolVar(&diffDropConstraints, "drop-constraints", false, "emit DROP CONSTRAINT statements")
	diffCmd.Flags().BoolVar(&diffCheckNames, "check-constraint-names", false, "require CHECK constraint names to match for equality")
}

const replHelp = `sqlkit interactive REPL

Commands:
  format <sql>   Reformat a statement
  parse <sql>    Print a statement's AST as JSON
  cte <sql>      List a SELECT's CTE dependency graph
  help           Show this help message
  exit / quit    Exit the REPL

Any other input is parsed and reformatted under default style options.
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("sqlkit — SQL parsing and formatting toolkit")
		fmt.Println(`Type "help" for available commands.`)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return nil
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fields := strings.SplitN(line, " ", 2)
			switch strings.ToLower(fields[0]) {
			case "exit", "quit":
				return nil
			case "help":
				fmt.Print(replHelp)
			case "format":
				runREPLFormat(arg(fields))
			case "parse":
				runREPLParse(arg(fields))
			case "cte":
				runREPLCte(arg(fields))
			default:
				runREPLFormat(line)
			}
		}
	},
}

func arg(fields []string) string {
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func runREPLFormat(sql string) {
	stmt, err := sqlkit.Parse(sql)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return
	}
	out, err := sqlkit.Format(stmt, sqlkit.DefaultFormatOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "format error:", err)
		return
	}
	fmt.Println(out)
}

func runREPLParse(sql string) {
	stmt, err := sqlkit.Parse(sql)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return
	}
	if err := printJSON(stmt); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func runREPLCte(sql string) {
	q, err := sqlkit.ParseSelect(sql)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return
	}
	infos, err := sqlkit.CollectCTEs(q)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cte error:", err)
		return
	}
	if err := printJSON(infos); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseKeywordCase(s string) (format.KeywordCase, error) {
	switch strings.ToLower(s) {
	case "lower":
		return format.KeywordLower, nil
	case "upper":
		return format.KeywordUpper, nil
	case "preserve":
		return format.KeywordPreserve, nil
	default:
		return 0, fmt.Errorf("unknown --keyword-case %q (want lower|upper|preserve)", s)
	}
}

func init() {
	formatCmd.Flags().StringVar(&fmtKeywordCase, "keyword-case", "lower", "keyword casing: lower|upper|preserve")
	formatCmd.Flags().IntVar(&fmtIndentSize, "indent", 4, "indent width in spaces")
}
