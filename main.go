/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package main

import "github.com/arya-analytics/wall/cmd"

func main() { cmd.Execute() }
