package main

import "github.com/SoumyaRaikwar/relcheck/cmd"

func main() {
	cmd.Execute()
}
