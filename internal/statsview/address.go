package statsview

// Address is the default listen address of the stats server
const Address = "localhost:12600"

const chartsPath = "/debug/statsview"
