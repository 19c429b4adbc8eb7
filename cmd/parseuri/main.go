// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// parseuri parses MongoDB connection strings given as arguments, or one per
// line from a file, and prints the parsed record as JSON.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/pretty"

	"github.com/ikmak/connstring"
)

var (
	port       = flag.Int("port", 0, "default port for hosts that do not name one")
	lenient    = flag.Bool("lenient", false, "drop unknown and invalid options with a warning")
	novalidate = flag.Bool("novalidate", false, "keep option values as decoded strings")
	fileName   = flag.String("f", "", "read connection strings from a file, one per line (- for stdin)")
	debug      = flag.Bool("debug", false, "dump the parsed record with go-spew")
)

func main() {
	err := mainReal()
	if err != nil {
		logrus.Error(err)
		os.Exit(-1)
	}
}

func mainReal() error {
	flag.Parse()

	uris := flag.Args()
	if *fileName != "" {
		fromFile, err := readURIs(*fileName)
		if err != nil {
			return err
		}
		uris = append(uris, fromFile...)
	}
	if len(uris) == 0 {
		return errors.New("no connection strings given")
	}

	parser := connstring.Parser{
		DefaultPort:    *port,
		SkipValidation: *novalidate,
		Lenient:        *lenient,
	}

	for _, uri := range uris {
		cs, err := parser.Parse(uri)
		if err != nil {
			return errors.Wrapf(err, "cannot parse %q", uri)
		}

		for _, w := range cs.Warnings {
			logrus.WithField("uri", uri).Warn(w)
		}

		if *debug {
			spew.Dump(cs)
			continue
		}

		b, err := json.Marshal(cs)
		if err != nil {
			// this should be impossible
			panic(err)
		}
		if _, err := os.Stdout.Write(pretty.Pretty(b)); err != nil {
			return err
		}
	}

	return nil
}

func readURIs(fileName string) ([]string, error) {
	var file *os.File
	var err error

	if fileName == "-" {
		file = os.Stdin
	} else {
		file, err = os.Open(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open file %s", fileName)
		}
		defer file.Close()
	}

	var uris []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		uris = append(uris, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "cannot read file %s", fileName)
	}

	return uris, nil
}
