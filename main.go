package main

import "sfneuman.com/goinit/examples"

func main() {
	examples.DenseLayer()
	examples.ConvolutionKernel()
}
