// Package all registriert alle Algorithmus-Pakete fuer Werkzeuge (CLI, Server, Probe).
package all

import (
	_ "github.com/7blacky7/godaal/algorithms/associationrules"
	_ "github.com/7blacky7/godaal/algorithms/classifier/qualitymetric/multiclassconfusionmatrix"
	_ "github.com/7blacky7/godaal/algorithms/decisiontree/regression/training"
	_ "github.com/7blacky7/godaal/algorithms/gbt/regression/training"
	_ "github.com/7blacky7/godaal/algorithms/implicitals/training"
	_ "github.com/7blacky7/godaal/algorithms/lassoregression/prediction"
	_ "github.com/7blacky7/godaal/algorithms/logitboost/qualitymetricset"
	_ "github.com/7blacky7/godaal/algorithms/math/smoothrelu"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/dropout"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/eltwisesum"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/elu"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/maximumpooling1d"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/maximumpooling2d"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/pooling1d"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/pooling3d"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/prelu"
	_ "github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/softmaxcross"
	_ "github.com/7blacky7/godaal/algorithms/pca/transform"
	_ "github.com/7blacky7/godaal/algorithms/pivotedqr"
)
