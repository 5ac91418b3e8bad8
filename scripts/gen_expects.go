package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"golang.org/x/net/context"
)

// usage: go run scripts/gen_expects.go -- forth_test.go expects_test.go
func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		log.Fatalln("usage: gen_expects SOURCE [OUTPUT]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("failed to open %v: %v", args[0], err)
	}
	defer f.Close()

	code, err := generate(ctx, args[0], f, args)
	if err != nil {
		log.Fatalln(err)
	}

	if len(args) < 2 {
		_, err = os.Stdout.Write(code)
	} else {
		err = os.WriteFile(args[1], code, 0o644)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// expectMethod matches builder methods with at least one parameter, like:
//
//	func (ft forthTestCase) expectStack(values ...int) forthTestCase {
var expectMethod = regexp.MustCompile(`func \(ft forthTestCase\) (expect|with)(.+?)\((.+?)\) forthTestCase`)

// generate writes a func(forthTestCase) forthTestCase wrapper for every
// builder method found in src, so that they may be passed as variadic
// expectations; genArgs, when it names both source and output, is recorded
// in a go:generate line.
func generate(ctx context.Context, name string, src io.Reader, genArgs []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package forth\n\n// @generated from %v\n\n", name)
	if len(genArgs) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_expects.go --")
		for _, arg := range genArgs {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(src)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		match := expectMethod.FindSubmatch(sc.Bytes())
		if len(match) == 0 {
			continue
		}
		baseName, whatName, params := match[1], match[2], match[3]

		var callArgs [][]byte
		for _, param := range bytes.Split(params, []byte(",")) {
			fields := bytes.Fields(param)
			arg := fields[0]
			if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
				arg = append(arg[:len(arg):len(arg)], "..."...)
			}
			callArgs = append(callArgs, arg)
		}

		fmt.Fprintf(&buf, "func %sForth%s(%s) func(forthTestCase) forthTestCase {\n", baseName, whatName, params)
		buf.WriteString("return func(ft forthTestCase) forthTestCase {\n")
		fmt.Fprintf(&buf, "return ft.%s%s(%s)\n", baseName, whatName, bytes.Join(callArgs, []byte(", ")))
		buf.WriteString("}\n}\n\n")
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}
